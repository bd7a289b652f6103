package validator

import (
	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

func validateFieldsSelectionsOnObjectsInterfacesAndUnions(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	var selectionSetType []schema.Type
	ast.Inspect(doc, func(node ast.Node) bool {
		if node == nil {
			selectionSetType = selectionSetType[:len(selectionSetType)-1]
			return true
		}

		switch node := node.(type) {
		case *ast.SelectionSet:
			selectionSetType = append(selectionSetType, schema.UnwrapType(typeInfo.SelectionSetTypes[node]))
		case *ast.Field:
			name := node.Name.Name
			if name != "__typename" {
				switch parent := selectionSetType[len(selectionSetType)-1].(type) {
				case *schema.ObjectType:
					if _, ok := parent.Fields[name]; !ok {
						suggestions := suggestionMessage(suggestionList(name, fieldNames(parent.Fields)))
						ret = append(ret, newError(node, "field %v does not exist on %v object.%v", name, parent.Name, suggestions))
					}
				case *schema.InterfaceType:
					if _, ok := parent.Fields[name]; !ok {
						suggestions := suggestionMessage(suggestionList(name, fieldNames(parent.Fields)))
						ret = append(ret, newError(node, "field %v does not exist on %v interface.%v", name, parent.Name, suggestions))
					}
				case *schema.UnionType:
					ret = append(ret, newError(node, "field %v does not exist on %v union", name, parent.Name))
				}
			}
			selectionSetType = append(selectionSetType, nil)
		default:
			selectionSetType = append(selectionSetType, nil)
		}
		return true
	})
	return ret
}

func fieldNames(fields map[string]*schema.FieldDefinition) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}
