package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

func TestParser_ParseValue(t *testing.T) {
	for src, expected := range map[string]ast.Value{
		`null`: &ast.NullValue{
			Pos: ast.Pos{Pos: ast.Position{Line: 1, Column: 1}},
		},
		`[123 "abc"]`: &ast.ListValue{
			Pos: ast.Pos{Pos: ast.Position{Line: 1, Column: 1}},
			Values: []ast.Value{
				&ast.IntValue{
					Pos:   ast.Pos{Pos: ast.Position{Line: 1, Column: 2}},
					Value: "123",
				},
				&ast.StringValue{
					Pos:   ast.Pos{Pos: ast.Position{Line: 1, Column: 6}},
					Value: "abc",
				},
			},
		},
		`["""long""" "short"]`: &ast.ListValue{
			Pos: ast.Pos{Pos: ast.Position{Line: 1, Column: 1}},
			Values: []ast.Value{
				&ast.StringValue{
					Pos:   ast.Pos{Pos: ast.Position{Line: 1, Column: 2}},
					Value: "long",
				},
				&ast.StringValue{
					Pos:   ast.Pos{Pos: ast.Position{Line: 1, Column: 13}},
					Value: "short",
				},
			},
		},
		`{foo: "foo"}`: &ast.ObjectValue{
			Pos: ast.Pos{Pos: ast.Position{Line: 1, Column: 1}},
			Fields: []*ast.ObjectField{
				{
					Pos: ast.Pos{Pos: ast.Position{Line: 1, Column: 2}},
					Name: &ast.Name{
						Pos:  ast.Pos{Pos: ast.Position{Line: 1, Column: 2}},
						Name: "foo",
					},
					Value: &ast.StringValue{
						Pos:   ast.Pos{Pos: ast.Position{Line: 1, Column: 7}},
						Value: "foo",
					},
				},
			},
		},
	} {
		actual, errs := ParseValue([]byte(src))
		assert.Empty(t, errs)
		assert.Equal(t, expected, actual)
	}
}

func TestParser_ParseValue_Error(t *testing.T) {
	_, errs := ParseValue([]byte(`{foo`))
	if assert.Len(t, errs, 1) {
		assert.Equal(t, ast.Position{Line: 1, Column: 2}, errs[0].Location)
	}
}

func TestParser_ParseDocument(t *testing.T) {
	doc, errs := ParseDocument([]byte(`{
  node(id: "1") {
    name
  }
}`))
	assert.Empty(t, errs)
	if assert.Len(t, doc.Definitions, 1) {
		op, ok := doc.Definitions[0].(*ast.OperationDefinition)
		if assert.True(t, ok) {
			assert.Equal(t, ast.Position{Line: 1, Column: 1}, op.Position())
			assert.Equal(t, ast.OperationTypeQuery, op.EffectiveOperationType())
			if assert.Len(t, op.SelectionSet.Selections, 1) {
				field, ok := op.SelectionSet.Selections[0].(*ast.Field)
				if assert.True(t, ok) {
					assert.Equal(t, "node", field.Name.Name)
					assert.Equal(t, ast.Position{Line: 2, Column: 3}, field.Position())
				}
			}
		}
	}
}

func TestParser_ParseDocument_Error(t *testing.T) {
	_, errs := ParseDocument([]byte(`{ node`))
	assert.NotEmpty(t, errs)
}

func TestParser_ParseValue_RecursionLimit(t *testing.T) {
	src := ""
	for i := 0; i < maxRecursion+1; i++ {
		src += "["
	}
	_, errs := ParseValue([]byte(src))
	assert.NotEmpty(t, errs)
}
