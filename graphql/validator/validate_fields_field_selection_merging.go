package validator

import (
	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// fieldMerge records a field selection along with the concrete type it was selected through, so
// that conflicting selections can be distinguished from ones that are merely reached via
// mutually exclusive type conditions (e.g. two different `... on` branches of an interface).
type fieldMerge struct {
	Field      *ast.Field
	ParentType schema.NamedType
}

// addFieldMerges flattens a selection set's direct field selections into response-key groups,
// following fragment spreads and inline fragments but not descending into nested field
// subselections (each selection set is checked independently).
func addFieldMerges(groups map[string][]fieldMerge, parentType schema.NamedType, selectionSet *ast.SelectionSet, fragmentDefinitions map[string]*ast.FragmentDefinition, s *schema.Schema, visiting map[string]struct{}) {
	if selectionSet == nil {
		return
	}
	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			key := selection.ResponseKey()
			groups[key] = append(groups[key], fieldMerge{Field: selection, ParentType: parentType})
		case *ast.InlineFragment:
			t := parentType
			if selection.TypeCondition != nil {
				if named, ok := s.NamedType(selection.TypeCondition.Name.Name).(schema.NamedType); ok {
					t = named
				}
			}
			addFieldMerges(groups, t, selection.SelectionSet, fragmentDefinitions, s, visiting)
		case *ast.FragmentSpread:
			name := selection.FragmentName.Name
			if _, ok := visiting[name]; ok {
				continue
			}
			def, ok := fragmentDefinitions[name]
			if !ok {
				continue
			}
			visiting[name] = struct{}{}
			t := parentType
			if named, ok := s.NamedType(def.TypeCondition.Name.Name).(schema.NamedType); ok {
				t = named
			}
			addFieldMerges(groups, t, def.SelectionSet, fragmentDefinitions, s, visiting)
			delete(visiting, name)
		}
	}
}

// validateFieldsFieldSelectionMerging implements the GraphQL spec's "Field Selection Merging"
// rule: selections that share a response key must be unambiguous, either because they're
// selecting the exact same field with the exact same arguments, or because they can never both
// apply to the same underlying object (they're reached through different, mutually exclusive
// object types) and merely happen to share a response shape.
func validateFieldsFieldSelectionMerging(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	fragmentDefinitions := map[string]*ast.FragmentDefinition{}
	for _, def := range doc.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			fragmentDefinitions[def.Name.Name] = def
		}
	}

	var ret []*Error
	ast.Inspect(doc, func(node ast.Node) bool {
		selectionSet, ok := node.(*ast.SelectionSet)
		if !ok {
			return true
		}

		groups := map[string][]fieldMerge{}
		addFieldMerges(groups, typeInfo.SelectionSetTypes[selectionSet], selectionSet, fragmentDefinitions, s, map[string]struct{}{})

		for key, group := range groups {
			if len(group) < 2 {
				continue
			}
			if !fieldsCanMerge(group, typeInfo) {
				ret = append(ret, newError(group[0].Field, "fields for %v conflict", key))
			}
		}
		return true
	})
	return ret
}

func fieldsCanMerge(group []fieldMerge, typeInfo *TypeInfo) bool {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			a, b := group[i], group[j]
			if !sameResponseShape(typeInfo.FieldTypes[a.Field], typeInfo.FieldTypes[b.Field]) {
				return false
			}
			if !mutuallyExclusiveTypes(a.ParentType, b.ParentType) {
				if a.Field.Name.Name != b.Field.Name.Name || !sameArguments(a.Field.Arguments, b.Field.Arguments) {
					return false
				}
			}
		}
	}
	return true
}

// mutuallyExclusiveTypes reports whether a and b are distinct object types, meaning no value
// could ever satisfy both of them at once.
func mutuallyExclusiveTypes(a, b schema.NamedType) bool {
	aObj, aOk := a.(*schema.ObjectType)
	bObj, bOk := b.(*schema.ObjectType)
	return aOk && bOk && aObj != bObj
}

// sameResponseShape reports whether two types would produce indistinguishable JSON shapes,
// ignoring the particular named type of any composite type (their field-level shape is checked
// independently when their own selection sets are validated).
func sameResponseShape(a, b schema.Type) bool {
	if a == nil || b == nil {
		return true
	}

	for {
		aNonNull, aOk := a.(*schema.NonNullType)
		bNonNull, bOk := b.(*schema.NonNullType)
		if aOk != bOk {
			return false
		}
		if !aOk {
			break
		}
		a, b = aNonNull.Type, bNonNull.Type
	}

	for {
		aList, aOk := a.(*schema.ListType)
		bList, bOk := b.(*schema.ListType)
		if aOk != bOk {
			return false
		}
		if !aOk {
			break
		}
		a, b = aList.Type, bList.Type
	}

	switch a.(type) {
	case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
		switch b.(type) {
		case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
			return true
		default:
			return false
		}
	default:
		an, aOk := a.(schema.NamedType)
		bn, bOk := b.(schema.NamedType)
		return aOk && bOk && an.NamedType() == bn.NamedType()
	}
}

// sameArguments reports whether two argument lists are equivalent regardless of order.
func sameArguments(a, b []*ast.Argument) bool {
	if len(a) != len(b) {
		return false
	}
	byName := map[string]ast.Value{}
	for _, arg := range b {
		byName[arg.Name.Name] = arg.Value
	}
	for _, arg := range a {
		value, ok := byName[arg.Name.Name]
		if !ok || !astValueEqual(arg.Value, value) {
			return false
		}
	}
	return true
}

// astValueEqual reports whether two AST values are structurally identical, ignoring position.
func astValueEqual(a, b ast.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case *ast.Variable:
		b, ok := b.(*ast.Variable)
		return ok && a.Name.Name == b.Name.Name
	case *ast.IntValue:
		b, ok := b.(*ast.IntValue)
		return ok && a.Value == b.Value
	case *ast.FloatValue:
		b, ok := b.(*ast.FloatValue)
		return ok && a.Value == b.Value
	case *ast.StringValue:
		b, ok := b.(*ast.StringValue)
		return ok && a.Value == b.Value
	case *ast.BooleanValue:
		b, ok := b.(*ast.BooleanValue)
		return ok && a.Value == b.Value
	case *ast.EnumValue:
		b, ok := b.(*ast.EnumValue)
		return ok && a.Value == b.Value
	case *ast.NullValue:
		_, ok := b.(*ast.NullValue)
		return ok
	case *ast.ListValue:
		b, ok := b.(*ast.ListValue)
		if !ok || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !astValueEqual(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case *ast.ObjectValue:
		b, ok := b.(*ast.ObjectValue)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		byName := map[string]ast.Value{}
		for _, field := range b.Fields {
			byName[field.Name.Name] = field.Value
		}
		for _, field := range a.Fields {
			value, ok := byName[field.Name.Name]
			if !ok || !astValueEqual(field.Value, value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
