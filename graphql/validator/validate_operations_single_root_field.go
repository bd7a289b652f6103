package validator

import (
	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// fieldAndParent pairs a field selection with the fragment or operation it was collected
// through, for error reporting.
type fieldAndParent struct {
	Field  *ast.Field
	Parent ast.Node
}

// addFieldSelections flattens a selection set into the root fields it selects, following
// fragment spreads and inline fragments. It's used to count the root fields of a subscription
// operation, which the GraphQL spec requires to select exactly one.
func addFieldSelections(fieldsForName map[string][]fieldAndParent, parent ast.Node, selectionSet *ast.SelectionSet, fragmentDefinitions map[string]*ast.FragmentDefinition, visitedFragments map[string]struct{}) {
	if selectionSet == nil {
		return
	}
	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			name := selection.ResponseKey()
			fieldsForName[name] = append(fieldsForName[name], fieldAndParent{Field: selection, Parent: parent})
		case *ast.InlineFragment:
			addFieldSelections(fieldsForName, selection, selection.SelectionSet, fragmentDefinitions, visitedFragments)
		case *ast.FragmentSpread:
			name := selection.FragmentName.Name
			if _, ok := visitedFragments[name]; ok {
				continue
			}
			visitedFragments[name] = struct{}{}
			if def, ok := fragmentDefinitions[name]; ok {
				addFieldSelections(fieldsForName, selection, def.SelectionSet, fragmentDefinitions, visitedFragments)
			}
		}
	}
}

// validateOperationsSingleRootField implements the GraphQL spec's "Single root field" rule:
// subscription operations must select exactly one root field. Meta fields like __typename still
// count toward this total, since the rule concerns the shape of the event stream, not whether
// the selections are otherwise meaningful.
func validateOperationsSingleRootField(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	fragmentDefinitions := map[string]*ast.FragmentDefinition{}
	for _, def := range doc.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			fragmentDefinitions[def.Name.Name] = def
		}
	}

	var ret []*Error
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.OperationType == nil || *op.OperationType != ast.OperationTypeSubscription {
			continue
		}

		fieldsForName := map[string][]fieldAndParent{}
		addFieldSelections(fieldsForName, op, op.SelectionSet, fragmentDefinitions, map[string]struct{}{})

		// Per the spec's grouped field set, multiple selections of the same response key (e.g.
		// through merged fragments) still count as a single root field.
		if len(fieldsForName) > 1 {
			ret = append(ret, newError(op, "subscription operations may only select one root field"))
		}
	}
	return ret
}

// validateOperationsSupportedType ensures that an operation's type is actually supported by the
// schema (e.g. a schema with no mutation type can't be queried with a mutation operation).
func validateOperationsSupportedType(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.OperationType == nil {
			continue
		}
		switch *op.OperationType {
		case ast.OperationTypeMutation:
			if s.MutationType() == nil {
				ret = append(ret, newError(op, "schema is not configured for mutations"))
			}
		case ast.OperationTypeSubscription:
			if s.SubscriptionType() == nil {
				ret = append(ret, newError(op, "schema is not configured for subscriptions"))
			}
		}
	}
	return ret
}
