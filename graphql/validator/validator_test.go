package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlcore/graphql/parser"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

func validateSource(t *testing.T, src string) []*Error {
	s, err := schema.New(&schema.SchemaDefinition{
		Query:        objectType,
		Subscription: objectType,
		// Cat is never returned by any field of objectType, but the field selection merging
		// tests still need it to be a legal type condition.
		AdditionalTypes: []schema.NamedType{catObjectType},
	})
	require.NoError(t, err)
	return validateSourceWithSchema(t, s, src)
}

func validateSourceWithSchema(t *testing.T, s *schema.Schema, src string) []*Error {
	doc, errs := parser.ParseDocument([]byte(src))
	require.Empty(t, errs)
	require.NotNil(t, doc)
	return ValidateDocument(doc, s, false)
}

func TestValidateDocumentFailOnFirstError(t *testing.T) {
	s, err := schema.New(&schema.SchemaDefinition{
		Query: objectType,
	})
	require.NoError(t, err)

	doc, errs := parser.ParseDocument([]byte(`{object{missingOne missingTwo}}`))
	require.Empty(t, errs)
	require.NotNil(t, doc)

	all := ValidateDocument(doc, s, false)
	require.Len(t, all, 2)

	first := ValidateDocument(doc, s, true)
	require.Len(t, first, 1)
	require.Equal(t, all[0].Message, first[0].Message)
}
