package validator

import (
	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// TypeInfo precomputes the schema types associated with the nodes of a document, so that
// validation rules don't need to duplicate that work.
type TypeInfo struct {
	SelectionSetTypes       map[*ast.SelectionSet]schema.NamedType
	FieldDefinitions        map[*ast.Field]*schema.FieldDefinition
	FieldTypes              map[*ast.Field]schema.Type
	ExpectedTypes           map[ast.Value]schema.Type
	DefaultValues           map[ast.Value]interface{}
	VariableDefinitionTypes map[*ast.VariableDefinition]schema.Type
}

func NewTypeInfo(doc *ast.Document, s *schema.Schema) *TypeInfo {
	ret := &TypeInfo{
		SelectionSetTypes:       map[*ast.SelectionSet]schema.NamedType{},
		FieldDefinitions:        map[*ast.Field]*schema.FieldDefinition{},
		FieldTypes:              map[*ast.Field]schema.Type{},
		ExpectedTypes:           map[ast.Value]schema.Type{},
		DefaultValues:           map[ast.Value]interface{}{},
		VariableDefinitionTypes: map[*ast.VariableDefinition]schema.Type{},
	}

	var selectionSetScopes []schema.NamedType

	var visitValue func(value ast.Value, expected schema.Type, defaultValue interface{})
	visitValue = func(value ast.Value, expected schema.Type, defaultValue interface{}) {
		if value == nil {
			return
		}
		ret.ExpectedTypes[value] = expected
		if defaultValue != nil {
			ret.DefaultValues[value] = defaultValue
		}

		unwrapped := expected
		if nonNull, ok := unwrapped.(*schema.NonNullType); ok {
			unwrapped = nonNull.Type
		}

		switch value := value.(type) {
		case *ast.ListValue:
			itemType, _ := unwrapped.(*schema.ListType)
			for _, item := range value.Values {
				var itemExpected schema.Type
				if itemType != nil {
					itemExpected = itemType.Type
				}
				visitValue(item, itemExpected, nil)
			}
		case *ast.ObjectValue:
			inputObjectType, _ := unwrapped.(*schema.InputObjectType)
			for _, field := range value.Fields {
				var fieldExpected schema.Type
				var fieldDefault interface{}
				if inputObjectType != nil {
					if def, ok := inputObjectType.Fields[field.Name.Name]; ok {
						fieldExpected = def.Type
						fieldDefault = def.DefaultValue
					}
				}
				visitValue(field.Value, fieldExpected, fieldDefault)
			}
		}
	}

	ast.Inspect(doc, func(node ast.Node) bool {
		if node == nil {
			selectionSetScopes = selectionSetScopes[:len(selectionSetScopes)-1]
			return true
		}

		switch node := node.(type) {
		case *ast.Field:
			var fieldDef *schema.FieldDefinition
			switch parent := selectionSetScopes[len(selectionSetScopes)-1].(type) {
			case *schema.InterfaceType:
				fieldDef = parent.Fields[node.Name.Name]
			case *schema.ObjectType:
				fieldDef = parent.Fields[node.Name.Name]
			}

			var fieldType schema.Type
			if fieldDef != nil {
				ret.FieldDefinitions[node] = fieldDef
				fieldType = fieldDef.Type
				ret.FieldTypes[node] = fieldType

				argumentValues := map[string]ast.Value{}
				for _, arg := range node.Arguments {
					argumentValues[arg.Name.Name] = arg.Value
				}
				for name, def := range fieldDef.Arguments {
					if value, ok := argumentValues[name]; ok {
						visitValue(value, def.Type, def.DefaultValue)
					}
				}
			}

			var namedFieldType schema.NamedType
			if fieldType != nil {
				namedFieldType, _ = schema.UnwrapType(fieldType).(schema.NamedType)
			}
			selectionSetScopes = append(selectionSetScopes, namedFieldType)
		case *ast.Directive:
			if def := s.Directives()[node.Name.Name]; def != nil {
				argumentValues := map[string]ast.Value{}
				for _, arg := range node.Arguments {
					argumentValues[arg.Name.Name] = arg.Value
				}
				for name, argDef := range def.Arguments {
					if value, ok := argumentValues[name]; ok {
						visitValue(value, argDef.Type, argDef.DefaultValue)
					}
				}
			}
			selectionSetScopes = append(selectionSetScopes, nil)
		case *ast.FragmentDefinition:
			t, _ := s.NamedType(node.TypeCondition.Name.Name).(schema.NamedType)
			selectionSetScopes = append(selectionSetScopes, t)
		case *ast.InlineFragment:
			if node.TypeCondition == nil {
				selectionSetScopes = append(selectionSetScopes, selectionSetScopes[len(selectionSetScopes)-1])
			} else {
				t, _ := s.NamedType(node.TypeCondition.Name.Name).(schema.NamedType)
				selectionSetScopes = append(selectionSetScopes, t)
			}
		case *ast.OperationDefinition:
			var t *schema.ObjectType
			if op := node.OperationType; op == nil || *op == ast.OperationTypeQuery {
				t = s.QueryType()
			} else if *op == ast.OperationTypeMutation {
				t = s.MutationType()
			} else if *op == ast.OperationTypeSubscription {
				t = s.SubscriptionType()
			}
			if t != nil {
				selectionSetScopes = append(selectionSetScopes, t)
			} else {
				selectionSetScopes = append(selectionSetScopes, nil)
			}
			for _, def := range node.VariableDefinitions {
				variableType := schemaType(def.Type, s)
				ret.VariableDefinitionTypes[def] = variableType
				visitValue(def.DefaultValue, variableType, nil)
			}
		case *ast.SelectionSet:
			t := selectionSetScopes[len(selectionSetScopes)-1]
			ret.SelectionSetTypes[node] = t
			selectionSetScopes = append(selectionSetScopes, t)
		case *ast.Argument:
			// handled by the *ast.Field and *ast.Directive cases, which know the argument
			// definitions
			return false
		default:
			selectionSetScopes = append(selectionSetScopes, nil)
		}
		return true
	})

	return ret
}

// unwrappedASTType returns the named type at the core of an AST type reference, unwrapping any
// list or non-null wrappers.
func unwrappedASTType(t ast.Type) *ast.NamedType {
	for {
		switch n := t.(type) {
		case *ast.NamedType:
			return n
		case *ast.ListType:
			t = n.Type
		case *ast.NonNullType:
			t = n.Type
		default:
			return nil
		}
	}
}

// schemaType resolves an AST type reference against a schema, returning nil if it refers to an
// unknown named type.
func schemaType(t ast.Type, s *schema.Schema) schema.Type {
	switch t := t.(type) {
	case *ast.NamedType:
		named := s.NamedType(t.Name.Name)
		if named == nil {
			return nil
		}
		return named
	case *ast.ListType:
		elem := schemaType(t.Type, s)
		if elem == nil {
			return nil
		}
		return schema.NewListType(elem)
	case *ast.NonNullType:
		elem := schemaType(t.Type, s)
		if elem == nil {
			return nil
		}
		return schema.NewNonNullType(elem)
	default:
		return nil
	}
}
