package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchema(t *testing.T) {
	s, err := LoadSchema("testdata/schema.json")
	require.NoError(t, err)
	require.NotNil(t, s.QueryType())
	assert.NotNil(t, s.QueryType().Fields["greeting"])
}

func TestCheck(t *testing.T) {
	s, err := LoadSchema("testdata/schema.json")
	require.NoError(t, err)

	assert.Empty(t, Check(s, []string{"testdata/valid.graphql"}, false))
	assert.NotEmpty(t, Check(s, []string{"testdata/invalid.graphql"}, false))
	assert.NotEmpty(t, Check(s, []string{"testdata/*.graphql"}, false))

	require.Len(t, Check(s, []string{"testdata/invalid.graphql"}, false), 2)
	require.Len(t, Check(s, []string{"testdata/invalid.graphql"}, true), 1)
}
