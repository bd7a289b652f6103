package executor

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/errkind"
	"github.com/ccbrown/gqlcore/graphql/schema"
	"github.com/ccbrown/gqlcore/graphql/schema/introspection"
)

// groupedFieldSetItem pairs a response key with every field selection in a selection set that
// targets it. A single response key can have more than one Fields entry when a field and its
// aliases, or the same field selected through multiple fragments, land on the same key.
type groupedFieldSetItem struct {
	Key    string
	Fields []*ast.Field
}

// GroupedFieldSet holds the results of the CollectFields algorithm: the GraphQL spec calls for
// building it incrementally while walking a selection set's fields and spread fragments, in the
// order those selections first introduce each response key, then resolving every field collected
// under a key together so their sub-selections merge.
type GroupedFieldSet struct {
	indexByKey map[string]int
	items      []groupedFieldSetItem
}

// NewGroupedFieldSetWithCapacity allocates a GroupedFieldSet with capacity for n elements.
func NewGroupedFieldSetWithCapacity(n int) *GroupedFieldSet {
	return &GroupedFieldSet{
		indexByKey: make(map[string]int, n),
		items:      make([]groupedFieldSetItem, 0, n),
	}
}

// Append adds a field selection under the given response key, merging it into an existing entry
// if the key has already been seen.
func (g *GroupedFieldSet) Append(key string, field *ast.Field) {
	if idx, ok := g.indexByKey[key]; ok {
		g.items[idx].Fields = append(g.items[idx].Fields, field)
		return
	}
	g.indexByKey[key] = len(g.items)
	g.items = append(g.items, groupedFieldSetItem{Key: key, Fields: []*ast.Field{field}})
}

// Len returns the number of distinct response keys in the set.
func (g *GroupedFieldSet) Len() int {
	return len(g.items)
}

// Items returns the set's entries in the order their keys were first introduced.
func (g *GroupedFieldSet) Items() []groupedFieldSetItem {
	return g.items
}

type Request struct {
	Document       *ast.Document
	Schema         *schema.Schema
	OperationName  string
	VariableValues map[string]interface{}
	InitialValue   interface{}

	// Logger records resolver panics and request cancellation, both of which are also reported
	// as errors in the response. It defaults to logrus's standard logger.
	Logger logrus.FieldLogger
}

func ExecuteRequest(ctx context.Context, r *Request) (*OrderedMap, []*Error) {
	if e, err := newExecutor(ctx, r); err != nil {
		return nil, []*Error{err}
	} else if opType := e.Operation.OperationType; opType == nil || *opType == "query" {
		return e.executeQuery(r.InitialValue)
	} else if *opType == "mutation" {
		return e.executeMutation(r.InitialValue)
	} else if *opType == "subscription" {
		return e.executeSubscriptionEvent(r.InitialValue)
	}
	panic("unexpected operation type")
}

// IsSubscription can be used to determine if a request is for a subscription.
func IsSubscription(doc *ast.Document, operationName string) bool {
	operation, err := getOperation(doc, operationName)
	return err == nil && operation.OperationType != nil && *operation.OperationType == "subscription"
}

// Subscribe resolves the root subscription field of a request and returns the result.
func Subscribe(ctx context.Context, r *Request) (interface{}, *Error) {
	if e, err := newExecutor(ctx, r); err != nil {
		return nil, err
	} else if e.Operation.OperationType != nil && *e.Operation.OperationType == "subscription" {
		return e.subscribe(r.InitialValue)
	} else {
		return nil, newError(e.Operation, "A subscription operation is required.")
	}
}

type executor struct {
	Context             context.Context
	Schema              *schema.Schema
	FragmentDefinitions map[string]*ast.FragmentDefinition
	VariableValues      map[string]interface{}
	Logger              logrus.FieldLogger

	mu        sync.Mutex
	Errors    []*Error
	Operation *ast.OperationDefinition

	cancellationLogged sync.Once
}

func (e *executor) appendError(err *Error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, err)
	e.mu.Unlock()
}

// recordCancellation logs and records a single CANCELED diagnostic for the request, the first
// time any field observes that its context has been canceled. Only one diagnostic is recorded
// per request regardless of how many fields notice the cancellation concurrently; fields that
// already completed before the cancellation was observed keep their resolved values in the
// response.
func (e *executor) recordCancellation() {
	e.cancellationLogged.Do(func() {
		wrapped := errors.Wrap(e.Context.Err(), "request canceled")
		e.Logger.Warn(wrapped)
		e.appendError(newKindedError(errkind.Canceled, nil, "%v", wrapped))
	})
}

func newExecutor(ctx context.Context, r *Request) (*executor, *Error) {
	operation, err := getOperation(r.Document, r.OperationName)
	if err != nil {
		return nil, err
	}
	coercedVariableValues, err := coerceVariableValues(r.Schema, operation, r.VariableValues)
	if err != nil {
		return nil, err
	}

	logger := r.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	e := &executor{
		Context:             ctx,
		Schema:              r.Schema,
		FragmentDefinitions: map[string]*ast.FragmentDefinition{},
		VariableValues:      coercedVariableValues,
		Logger:              logger,
		Operation:           operation,
	}
	for _, def := range r.Document.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			e.FragmentDefinitions[def.Name.Name] = def
		}
	}
	return e, nil
}

func (e *executor) executeQuery(initialValue interface{}) (*OrderedMap, []*Error) {
	queryType := e.Schema.QueryType()
	if !schema.IsObjectType(queryType) {
		return nil, []*Error{newError(e.Operation, "This schema cannot perform queries.")}
	}
	data, err := e.executeSelections(e.Operation.SelectionSet.Selections, queryType, initialValue, nil, false)
	if err != nil {
		e.appendError(err)
	}
	return data, e.Errors
}

func (e *executor) executeMutation(initialValue interface{}) (*OrderedMap, []*Error) {
	mutationType := e.Schema.MutationType()
	if !schema.IsObjectType(mutationType) {
		return nil, []*Error{newError(e.Operation, "This schema cannot perform mutations.")}
	}
	data, err := e.executeSelections(e.Operation.SelectionSet.Selections, mutationType, initialValue, nil, true)
	if err != nil {
		e.appendError(err)
	}
	return data, e.Errors
}

func (e *executor) subscribe(initialValue interface{}) (interface{}, *Error) {
	subscriptionType := e.Schema.SubscriptionType()
	if !schema.IsObjectType(subscriptionType) {
		return nil, newError(e.Operation, "This schema cannot perform subscriptions.")
	}

	groupedFieldSet := NewGroupedFieldSetWithCapacity(1)
	e.collectFields(subscriptionType, e.Operation.SelectionSet.Selections, nil, groupedFieldSet)

	if groupedFieldSet.Len() != 1 {
		return nil, newError(e.Operation.SelectionSet, "Subscriptions must contain exactly one root field selection.")
	}

	item := groupedFieldSet.Items()[0]
	field := item.Fields[0]
	fieldName := field.Name.Name
	fieldDef := subscriptionType.Fields[fieldName]
	if fieldDef == nil {
		return nil, newError(field, "Undefined root subscription field.")
	}
	argumentValues, err := coerceArgumentValues(field, fieldDef.Arguments, field.Arguments, e.VariableValues)
	if err != nil {
		return nil, err
	}

	resolveValue, resolveErr := e.callResolve(fieldDef, &schema.FieldContext{
		Context:     e.Context,
		Schema:      e.Schema,
		Object:      initialValue,
		Arguments:   argumentValues,
		IsSubscribe: true,
	})
	if !isNil(resolveErr) {
		return nil, &Error{
			Message: resolveErr.Error(),
			Kind:    errkind.Resolver,
			Locations: []Location{{
				Line:   field.Position().Line,
				Column: field.Position().Column,
			}},
			Path:          []interface{}{item.Key},
			originalError: resolveErr,
		}
	}
	return resolveValue, nil
}

func (e *executor) executeSubscriptionEvent(initialValue interface{}) (*OrderedMap, []*Error) {
	subscriptionType := e.Schema.SubscriptionType()
	if !schema.IsObjectType(subscriptionType) {
		return nil, []*Error{newError(e.Operation, "This schema cannot perform subscriptions.")}
	}
	data, err := e.executeSelections(e.Operation.SelectionSet.Selections, subscriptionType, initialValue, nil, false)
	if err != nil {
		e.appendError(err)
	}
	return data, e.Errors
}

// executeSelections implements ExecuteSelectionSet from the spec. Fields are resolved
// concurrently unless forceSerial is set, which is required for the top-level fields of a
// mutation operation. The grouped field set's order is computed up front so that goroutines can
// write directly into their own slot of the response map without contending for a lock.
func (e *executor) executeSelections(selections []ast.Selection, objectType *schema.ObjectType, objectValue interface{}, path *path, forceSerial bool) (*OrderedMap, *Error) {
	groupedFieldSet := NewGroupedFieldSetWithCapacity(len(selections))
	e.collectFields(objectType, selections, nil, groupedFieldSet)

	items := groupedFieldSet.Items()
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	resultMap := NewOrderedMapWithKeys(keys)

	resolve := func(i int) *Error {
		item := items[i]
		fieldName := item.Fields[0].Name.Name

		if fieldName == "__typename" {
			resultMap.Set(i, item.Key, objectType.Name)
			return nil
		}

		fieldDef := objectType.Fields[fieldName]
		if fieldDef == nil && objectType == e.Schema.QueryType() {
			fieldDef = introspection.MetaFields[fieldName]
		}
		if fieldDef == nil {
			resultMap.Set(i, item.Key, nil)
			return nil
		}

		responseValue, err := e.executeField(objectValue, item.Fields, fieldDef, path.WithStringComponent(item.Key))
		if err != nil {
			if schema.IsNonNullType(fieldDef.Type) {
				return err
			}
			e.appendError(err)
		}
		resultMap.Set(i, item.Key, responseValue)
		return nil
	}

	if forceSerial || len(items) < 2 {
		for i := range items {
			if err := e.Context.Err(); err != nil {
				e.recordCancellation()
				return resultMap, nil
			}
			if err := resolve(i); err != nil {
				return nil, err
			}
		}
		return resultMap, nil
	}

	var wg sync.WaitGroup
	var firstErrMu sync.Mutex
	var firstErr *Error
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if e.Context.Err() != nil {
				e.recordCancellation()
				return
			}
			if err := resolve(i); err != nil {
				firstErrMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				firstErrMu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return resultMap, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil()
}

// callResolve invokes a field's resolver, recovering from and logging panics rather than letting
// them take down the whole request. A recovered panic is reported the same way a returned error
// would be, since callers can't tell the difference and shouldn't need to.
func (e *executor) callResolve(fieldDef *schema.FieldDefinition, ctx *schema.FieldContext) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("%v", r)
			e.Logger.Error(errors.Wrap(panicErr, "resolver panic"))
			err = panicErr
		}
	}()
	return fieldDef.Resolve(ctx)
}

func (e *executor) executeField(objectValue interface{}, fields []*ast.Field, fieldDef *schema.FieldDefinition, path *path) (interface{}, *Error) {
	field := fields[0]
	argumentValues, coercionErr := coerceArgumentValues(field, fieldDef.Arguments, field.Arguments, e.VariableValues)
	if coercionErr != nil {
		return nil, coercionErr
	}
	resolvedValue, err := e.callResolve(fieldDef, &schema.FieldContext{
		Context:   e.Context,
		Schema:    e.Schema,
		Object:    objectValue,
		Arguments: argumentValues,
	})
	if !isNil(err) {
		locations := make([]Location, len(fields))
		for i, field := range fields {
			locations[i].Line = field.Position().Line
			locations[i].Column = field.Position().Column
		}
		return nil, &Error{
			Message:       err.Error(),
			Kind:          errkind.Resolver,
			Locations:     locations,
			Path:          path.Slice(),
			originalError: err,
		}
	}
	return e.completeValue(fieldDef.Type, fields, resolvedValue, path)
}

func (e *executor) completeValue(fieldType schema.Type, fields []*ast.Field, result interface{}, path *path) (interface{}, *Error) {
	if nonNullType, ok := fieldType.(*schema.NonNullType); ok {
		completedResult, err := e.completeValue(nonNullType.Type, fields, result, path)
		if err != nil {
			return nil, err
		} else if completedResult == nil {
			return nil, newKindedErrorWithPath(errkind.NonNullViolation, fields[0], path, "Null result for non-null field.")
		}
		return completedResult, nil
	}

	if isNil(result) {
		return nil, nil
	}

	switch fieldType := fieldType.(type) {
	case *schema.ListType:
		result := reflect.ValueOf(result)
		if result.Kind() != reflect.Slice {
			return nil, newKindedErrorWithPath(errkind.ListExpected, fields[0], path, "Result is not a list.")
		}
		innerType := fieldType.Type
		completedResult := make([]interface{}, result.Len())
		for i := range completedResult {
			completedResultItem, err := e.completeValue(innerType, fields, result.Index(i).Interface(), path.WithIntComponent(i))
			if err != nil {
				if schema.IsNonNullType(innerType) {
					return nil, err
				}
				e.appendError(err)
			}
			completedResult[i] = completedResultItem
		}
		return completedResult, nil
	case *schema.ScalarType:
		if coerced, err := fieldType.CoerceResult(result); err != nil {
			return nil, newKindedErrorWithPath(errkind.Serialization, fields[0], path, "Unexpected result: %v", err)
		} else {
			return coerced, nil
		}
	case *schema.EnumType:
		if coerced, err := fieldType.CoerceResult(result); err != nil {
			return nil, newKindedErrorWithPath(errkind.Serialization, fields[0], path, "Unexpected result: %v", err)
		} else {
			return coerced, nil
		}
	case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
		var objectType *schema.ObjectType
		switch fieldType := fieldType.(type) {
		case *schema.ObjectType:
			objectType = fieldType
		case *schema.InterfaceType:
			for _, t := range e.Schema.InterfaceImplementations(fieldType.Name) {
				if t.IsTypeOf != nil && t.IsTypeOf(result) {
					objectType = t
					break
				}
			}
		case *schema.UnionType:
			for _, t := range fieldType.MemberTypes {
				if t.IsTypeOf != nil && t.IsTypeOf(result) {
					objectType = t
					break
				}
			}
		}
		if objectType == nil {
			return nil, newKindedErrorWithPath(errkind.AbstractResolution, fields[0], path, "Unable to determine object type.")
		}
		return e.executeSelections(mergeSelectionSets(fields), objectType, result, path, false)
	}
	panic(fmt.Sprintf("unexpected field type: %T", fieldType))
}

func mergeSelectionSets(fields []*ast.Field) []ast.Selection {
	var selectionSet []ast.Selection
	for _, field := range fields {
		if field.SelectionSet == nil {
			continue
		}
		selectionSet = append(selectionSet, field.SelectionSet.Selections...)
	}
	return selectionSet
}

func (e *executor) collectFields(objectType *schema.ObjectType, selections []ast.Selection, visitedFragments map[string]struct{}, groupedFields *GroupedFieldSet) {
	if visitedFragments == nil {
		visitedFragments = map[string]struct{}{}
	}
	for _, selection := range selections {
		skip := false
		for _, directive := range selection.SelectionDirectives() {
			if def := e.Schema.Directives()[directive.Name.Name]; def != nil && def.FieldCollectionFilter != nil {
				if arguments, err := coerceArgumentValues(directive, def.Arguments, directive.Arguments, e.VariableValues); err == nil && !def.FieldCollectionFilter(arguments) {
					skip = true
				}
			}
		}
		if skip {
			continue
		}

		switch selection := selection.(type) {
		case *ast.Field:
			responseKey := selection.Name.Name
			if selection.Alias != nil {
				responseKey = selection.Alias.Name
			}
			groupedFields.Append(responseKey, selection)
		case *ast.FragmentSpread:
			fragmentSpreadName := selection.FragmentName.Name
			if _, ok := visitedFragments[fragmentSpreadName]; ok {
				continue
			}
			visitedFragments[fragmentSpreadName] = struct{}{}

			fragment := e.FragmentDefinitions[fragmentSpreadName]
			if fragment == nil {
				continue
			}

			fragmentType := schemaType(fragment.TypeCondition, e.Schema)
			if fragmentType == nil || !doesFragmentTypeApply(objectType, fragmentType) {
				continue
			}

			e.collectFields(objectType, fragment.SelectionSet.Selections, visitedFragments, groupedFields)
		case *ast.InlineFragment:
			if selection.TypeCondition != nil {
				fragmentType := schemaType(selection.TypeCondition, e.Schema)
				if fragmentType == nil || !doesFragmentTypeApply(objectType, fragmentType) {
					continue
				}
			}

			e.collectFields(objectType, selection.SelectionSet.Selections, visitedFragments, groupedFields)
		default:
			panic(fmt.Sprintf("unexpected selection type: %T", selection))
		}
	}
}

func doesFragmentTypeApply(objectType *schema.ObjectType, fragmentType schema.Type) bool {
	switch fragmentType := fragmentType.(type) {
	case *schema.ObjectType:
		return objectType.IsSameType(fragmentType)
	case *schema.InterfaceType:
		for _, impl := range objectType.ImplementedInterfaces {
			if impl.IsSameType(fragmentType) {
				return true
			}
		}
		return false
	case *schema.UnionType:
		for _, member := range fragmentType.MemberTypes {
			if member.IsSameType(objectType) {
				return true
			}
		}
		return false
	}
	panic(fmt.Sprintf("unexpected fragment type: %T", fragmentType))
}

func getOperation(doc *ast.Document, operationName string) (*ast.OperationDefinition, *Error) {
	var ret *ast.OperationDefinition
	for _, def := range doc.Definitions {
		if def, ok := def.(*ast.OperationDefinition); ok {
			if (def.Name == nil && operationName == "") || (def.Name != nil && def.Name.Name == operationName) {
				if ret != nil {
					return nil, newKindedError(errkind.AmbiguousOperation, def, "Multiple matching operations.")
				}
				ret = def
			}
		}
	}
	if ret == nil {
		return nil, newKindedError(errkind.AmbiguousOperation, nil, "No matching operations.")
	}
	return ret, nil
}

func namedType(s *schema.Schema, name string) schema.NamedType {
	if ret := s.NamedTypes()[name]; ret != nil {
		return ret
	}
	return introspection.NamedTypes[name]
}

func schemaType(t ast.Type, s *schema.Schema) schema.Type {
	switch t := t.(type) {
	case *ast.ListType:
		if inner := schemaType(t.Type, s); inner != nil {
			return schema.NewListType(inner)
		}
	case *ast.NonNullType:
		if inner := schemaType(t.Type, s); inner != nil {
			return schema.NewNonNullType(inner)
		}
	case *ast.NamedType:
		return namedType(s, t.Name.Name)
	default:
		panic(fmt.Sprintf("unexpected ast type: %T", t))
	}
	return nil
}

func coerceVariableValues(s *schema.Schema, operation *ast.OperationDefinition, variableValues map[string]interface{}) (map[string]interface{}, *Error) {
	coercedValues := map[string]interface{}{}
	for _, def := range operation.VariableDefinitions {
		variableName := def.Variable.Name.Name
		variableType := schemaType(def.Type, s)
		if variableType == nil || !variableType.IsInputType() {
			return nil, newKindedError(errkind.VariableCoercion, def.Type, "Invalid variable type.")
		}
		value, hasValue := variableValues[variableName]

		if !hasValue && def.DefaultValue != nil {
			if coerced, err := schema.CoerceLiteral(def.DefaultValue, variableType, variableValues); err != nil {
				return nil, newKindedError(errkind.VariableCoercion, def.DefaultValue, "Invalid default value for $%v: %v", variableName, err.Error())
			} else {
				coercedValues[variableName] = coerced
			}
			continue
		} else if schema.IsNonNullType(variableType) && !hasValue {
			return nil, newKindedError(errkind.VariableCoercion, def.Variable, "The %v variable is required.", variableName)
		} else if hasValue {
			if coerced, err := schema.CoerceVariableValue(value, variableType); err != nil {
				return nil, newKindedError(errkind.VariableCoercion, def.Variable, "Invalid $%v value: %v", variableName, err.Error())
			} else {
				coercedValues[variableName] = coerced
			}
		}
	}
	return coercedValues, nil
}

func coerceArgumentValues(node ast.Node, argumentDefinitions map[string]*schema.InputValueDefinition, arguments []*ast.Argument, variableValues map[string]interface{}) (map[string]interface{}, *Error) {
	coercedValues := map[string]interface{}{}

	argumentValues := map[string]ast.Value{}
	for _, arg := range arguments {
		argumentValues[arg.Name.Name] = arg.Value
	}

	for argumentName, argumentDefinition := range argumentDefinitions {
		argumentType := argumentDefinition.Type
		defaultValue := argumentDefinition.DefaultValue

		argumentValue, hasValue := argumentValues[argumentName]

		if argumentValue, ok := argumentValue.(*ast.Variable); ok {
			_, hasValue = variableValues[argumentValue.Name.Name]
		}

		if !hasValue && defaultValue != nil {
			if defaultValue == schema.Null {
				defaultValue = nil
			}
			coercedValues[argumentName] = defaultValue
		} else if schema.IsNonNullType(argumentType) && !hasValue {
			return nil, newError(node, "The %v argument is required.", argumentName)
		} else if hasValue {
			if argVariable, ok := argumentValue.(*ast.Variable); ok {
				coercedValues[argumentName] = variableValues[argVariable.Name.Name]
			} else if coerced, err := schema.CoerceLiteral(argumentValue, argumentType, variableValues); err != nil {
				return nil, newKindedError(errkind.LiteralCoercion, argumentValue, "Invalid argument value: %v", err.Error())
			} else {
				coercedValues[argumentName] = coerced
			}
		}
	}

	return coercedValues, nil
}
