package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

func TestInspect(t *testing.T) {
	doc := &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{
				Name: &ast.Name{Name: "Foo"},
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{
							Name: &ast.Name{Name: "a"},
							SelectionSet: &ast.SelectionSet{
								Selections: []ast.Selection{
									&ast.FragmentSpread{FragmentName: &ast.Name{Name: "frag"}},
									&ast.InlineFragment{
										SelectionSet: &ast.SelectionSet{
											Selections: []ast.Selection{
												&ast.Field{Name: &ast.Name{Name: "b"}},
											},
										},
									},
								},
							},
						},
					},
				},
			},
			&ast.FragmentDefinition{
				Name:          &ast.Name{Name: "frag"},
				TypeCondition: &ast.NamedType{Name: &ast.Name{Name: "T"}},
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{Name: &ast.Name{Name: "c"}},
					},
				},
			},
		},
	}

	var names []string
	ast.Inspect(doc, func(node ast.Node) bool {
		if field, ok := node.(*ast.Field); ok {
			names = append(names, field.Name.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestInspect_SkipsSubtree(t *testing.T) {
	doc := &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{
							Name: &ast.Name{Name: "a"},
							SelectionSet: &ast.SelectionSet{
								Selections: []ast.Selection{
									&ast.Field{Name: &ast.Name{Name: "nested"}},
								},
							},
						},
					},
				},
			},
		},
	}

	var names []string
	ast.Inspect(doc, func(node ast.Node) bool {
		if field, ok := node.(*ast.Field); ok {
			names = append(names, field.Name.Name)
			return false
		}
		return true
	})
	assert.Equal(t, []string{"a"}, names)
}

func TestInspect_BalancesPushAndPop(t *testing.T) {
	doc := &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{Name: &ast.Name{Name: "a"}},
					},
				},
			},
		},
	}

	depth := 0
	maxDepth := 0
	ast.Inspect(doc, func(node ast.Node) bool {
		if node == nil {
			depth--
			return true
		}
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	assert.Equal(t, 0, depth)
	assert.Greater(t, maxDepth, 0)
}
