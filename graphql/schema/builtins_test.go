package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/parser"
)

func TestIntType(t *testing.T) {
	literal, errs := parser.ParseValue([]byte("1"))
	require.Empty(t, errs)
	v, err := IntType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = IntType.CoerceLiteral(&ast.StringValue{Value: "1"})
	assert.Error(t, err)

	for _, tc := range []struct {
		Value    interface{}
		Expected int
	}{
		{Value: 1, Expected: 1},
		{Value: int32(1), Expected: 1},
		{Value: int64(1), Expected: 1},
		{Value: 1.0, Expected: 1},
	} {
		v, err := IntType.CoerceVariableValue(tc.Value)
		require.NoError(t, err)
		assert.Equal(t, tc.Expected, v)
	}

	_, err = IntType.CoerceVariableValue(1.5)
	assert.Error(t, err)

	_, err = IntType.CoerceVariableValue(int64(1) << 40)
	assert.Error(t, err)
}

func TestFloatType(t *testing.T) {
	literal, errs := parser.ParseValue([]byte("1"))
	require.Empty(t, errs)
	v, err := FloatType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	literal, errs = parser.ParseValue([]byte("1.5"))
	require.Empty(t, errs)
	v, err = FloatType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = FloatType.CoerceLiteral(&ast.StringValue{Value: "1"})
	assert.Error(t, err)

	v, err = FloatType.CoerceVariableValue(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = FloatType.CoerceVariableValue("1")
	assert.Error(t, err)
}

func TestStringType(t *testing.T) {
	literal, errs := parser.ParseValue([]byte(`"abc"`))
	require.Empty(t, errs)
	v, err := StringType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = StringType.CoerceLiteral(&ast.IntValue{Value: "1"})
	assert.Error(t, err)

	v, err = StringType.CoerceResult("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = StringType.CoerceResult(1)
	assert.Error(t, err)
}

func TestBooleanType(t *testing.T) {
	literal, errs := parser.ParseValue([]byte("true"))
	require.Empty(t, errs)
	v, err := BooleanType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = BooleanType.CoerceLiteral(&ast.IntValue{Value: "1"})
	assert.Error(t, err)
}

func TestIDType(t *testing.T) {
	literal, errs := parser.ParseValue([]byte(`"abc"`))
	require.Empty(t, errs)
	v, err := IDType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	literal, errs = parser.ParseValue([]byte("1"))
	require.Empty(t, errs)
	v, err = IDType.CoerceLiteral(literal)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = IDType.CoerceLiteral(&ast.BooleanValue{Value: true})
	assert.Error(t, err)

	for _, tc := range []struct {
		Value    interface{}
		Expected string
	}{
		{Value: "abc", Expected: "abc"},
		{Value: 1, Expected: "1"},
		{Value: int64(1), Expected: "1"},
		{Value: 1.0, Expected: "1"},
	} {
		v, err := IDType.CoerceResult(tc.Value)
		require.NoError(t, err)
		assert.Equal(t, tc.Expected, v)
	}

	_, err = IDType.CoerceResult([]int{})
	assert.Error(t, err)
}
