package introspection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlcore/graphql"
	"github.com/ccbrown/gqlcore/graphql/schema"
	"github.com/ccbrown/gqlcore/graphql/schema/introspection"
)

func TestSchemaData(t *testing.T) {
	data := introspection.SchemaData{
		QueryType: introspection.TypeData{
			Kind: "OBJECT",
			Name: "Query",
		},
		Types: []introspection.TypeData{
			{
				Kind: "OBJECT",
				Name: "Query",
				Fields: []introspection.FieldData{
					{
						Name: "pet",
						Type: introspection.TypeData{
							Kind: "INTERFACE",
							Name: "Pet",
						},
					},
				},
			},
			{
				Kind: "INTERFACE",
				Name: "Pet",
				Fields: []introspection.FieldData{
					{
						Name: "nickname",
						Type: introspection.TypeData{
							Kind: "NON_NULL",
							OfType: &introspection.TypeData{
								Kind: "SCALAR",
								Name: "String",
							},
						},
					},
				},
				PossibleTypes: []introspection.TypeData{
					{Kind: "OBJECT", Name: "Dog"},
				},
			},
			{
				Kind: "OBJECT",
				Name: "Dog",
				Fields: []introspection.FieldData{
					{
						Name: "nickname",
						Type: introspection.TypeData{
							Kind: "NON_NULL",
							OfType: &introspection.TypeData{
								Kind: "SCALAR",
								Name: "String",
							},
						},
					},
				},
				Interfaces: []introspection.TypeData{
					{Kind: "INTERFACE", Name: "Pet"},
				},
			},
		},
	}

	def, err := data.GetSchemaDefinition()
	require.NoError(t, err)

	s, err := schema.New(def)
	require.NoError(t, err)

	t.Run("GoodQuery", func(t *testing.T) {
		_, errs := graphql.ParseAndValidate(`{ pet { nickname } }`, s, false)
		assert.Empty(t, errs)
	})

	t.Run("BadQuery", func(t *testing.T) {
		_, errs := graphql.ParseAndValidate(`{ pet { nicknaem } }`, s, false)
		assert.NotEmpty(t, errs)
	})

	t.Run("InlineFragmentOnImplementor", func(t *testing.T) {
		_, errs := graphql.ParseAndValidate(`{ pet { ... on Dog { nickname } } }`, s, false)
		assert.Empty(t, errs)
	})
}
