package schema

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

// CoerceLiteral coerces an AST literal into t's internal representation, resolving variables
// against variableValues along the way.
func CoerceLiteral(node ast.Value, t Type, variableValues map[string]interface{}) (interface{}, error) {
	return coerceLiteral(node, t, variableValues, true)
}

func coerceLiteral(node ast.Value, t Type, variableValues map[string]interface{}, allowItemToListCoercion bool) (interface{}, error) {
	if v, ok := node.(*ast.Variable); ok {
		value, ok := variableValues[v.Name.Name]
		if !ok {
			return nil, fmt.Errorf("undefined variable: $%v", v.Name.Name)
		}
		return value, nil
	}

	if nonNull, ok := t.(*NonNullType); ok {
		if ast.IsNullValue(node) {
			return nil, fmt.Errorf("%v cannot be null", t)
		}
		return coerceLiteral(node, nonNull.Type, variableValues, allowItemToListCoercion)
	}

	if ast.IsNullValue(node) {
		return nil, nil
	}

	switch t := t.(type) {
	case *ListType:
		return t.coerceLiteral(node, variableValues, allowItemToListCoercion)
	case *ScalarType:
		v, err := t.CoerceLiteral(node)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %v: %v", t, err)
		}
		return v, nil
	case *EnumType:
		v, err := t.CoerceLiteral(node)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *InputObjectType:
		obj, ok := node.(*ast.ObjectValue)
		if !ok {
			return nil, fmt.Errorf("expected object value for %v", t)
		}
		return t.CoerceLiteral(obj, variableValues)
	}
	return nil, fmt.Errorf("cannot coerce literal for %v", t)
}

// CoerceVariableValue coerces an already-decoded value (e.g. a JSON request variable) into t's
// internal representation.
func CoerceVariableValue(v interface{}, t Type) (interface{}, error) {
	if nonNull, ok := t.(*NonNullType); ok {
		if v == nil {
			return nil, fmt.Errorf("%v cannot be null", t)
		}
		return CoerceVariableValue(v, nonNull.Type)
	}

	if v == nil {
		return nil, nil
	}

	switch t := t.(type) {
	case *ListType:
		return t.CoerceVariableValue(v)
	case *ScalarType:
		coerced, err := t.CoerceVariableValue(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %v: %v", t, err)
		}
		return coerced, nil
	case *EnumType:
		return t.CoerceVariableValue(v)
	case *InputObjectType:
		return t.CoerceVariableValue(v)
	}
	return nil, fmt.Errorf("cannot coerce variable value for %v", t)
}
