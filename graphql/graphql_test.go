package graphql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlcore/graphql/schema"
)

func testSchema(t *testing.T) *Schema {
	s, err := NewSchema(&SchemaDefinition{
		Query: &ObjectType{
			Name: "Query",
			Fields: map[string]*FieldDefinition{
				"greeting": {
					Type: schema.StringType,
					Resolve: func(*FieldContext) (interface{}, error) {
						return "hello", nil
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func TestNewSchema_WrapsBuildFailure(t *testing.T) {
	_, err := NewSchema(&SchemaDefinition{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building graphql schema")
}

func TestExecute_ParseError(t *testing.T) {
	resp := Execute(&Request{
		Context: context.Background(),
		Query:   `{`,
		Schema:  testSchema(t),
	})
	require.Len(t, resp.Errors, 1)
	assert.Nil(t, resp.Data)
}

func TestExecute_ValidationError(t *testing.T) {
	resp := Execute(&Request{
		Context: context.Background(),
		Query:   `{nonexistentField}`,
		Schema:  testSchema(t),
	})
	require.NotEmpty(t, resp.Errors)
	assert.Nil(t, resp.Data)
}

func TestExecute_Query(t *testing.T) {
	resp := Execute(&Request{
		Context: context.Background(),
		Query:   `{greeting}`,
		Schema:  testSchema(t),
	})
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Data)
	serialized, err := json.Marshal(*resp.Data)
	require.NoError(t, err)
	assert.Equal(t, `{"greeting":"hello"}`, string(serialized))
}
