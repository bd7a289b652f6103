package schema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

func coerceIntLiteral(v ast.Value) (interface{}, error) {
	iv, ok := v.(*ast.IntValue)
	if !ok {
		return nil, fmt.Errorf("expected integer value")
	}
	n, err := strconv.ParseInt(iv.Value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid integer: %v", iv.Value)
	}
	return int(n), nil
}

func coerceIntVariableValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("integer out of range: %v", v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("invalid integer: %v", v)
		}
		return int(v), nil
	}
	return nil, fmt.Errorf("expected integer value")
}

var IntType = &ScalarType{
	Name:                "Int",
	CoerceLiteral:       coerceIntLiteral,
	CoerceVariableValue: coerceIntVariableValue,
	CoerceResult: func(v interface{}) (interface{}, error) {
		return coerceIntVariableValue(v)
	},
}

func coerceFloatValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, fmt.Errorf("expected float value")
}

var FloatType = &ScalarType{
	Name: "Float",
	CoerceLiteral: func(v ast.Value) (interface{}, error) {
		switch v := v.(type) {
		case *ast.IntValue:
			n, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid float: %v", v.Value)
			}
			return n, nil
		case *ast.FloatValue:
			n, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid float: %v", v.Value)
			}
			return n, nil
		}
		return nil, fmt.Errorf("expected float value")
	},
	CoerceVariableValue: coerceFloatValue,
	CoerceResult:        coerceFloatValue,
}

func coerceStringValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string value")
	}
	return s, nil
}

var StringType = &ScalarType{
	Name: "String",
	CoerceLiteral: func(v ast.Value) (interface{}, error) {
		sv, ok := v.(*ast.StringValue)
		if !ok {
			return nil, fmt.Errorf("expected string value")
		}
		return sv.Value, nil
	},
	CoerceVariableValue: coerceStringValue,
	CoerceResult:        coerceStringValue,
}

func coerceBooleanValue(v interface{}) (interface{}, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected boolean value")
	}
	return b, nil
}

var BooleanType = &ScalarType{
	Name: "Boolean",
	CoerceLiteral: func(v ast.Value) (interface{}, error) {
		bv, ok := v.(*ast.BooleanValue)
		if !ok {
			return nil, fmt.Errorf("expected boolean value")
		}
		return bv.Value, nil
	},
	CoerceVariableValue: coerceBooleanValue,
	CoerceResult:        coerceBooleanValue,
}

func coerceIDValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, fmt.Errorf("expected id value")
}

var IDType = &ScalarType{
	Name: "ID",
	CoerceLiteral: func(v ast.Value) (interface{}, error) {
		switch v := v.(type) {
		case *ast.IntValue:
			return v.Value, nil
		case *ast.StringValue:
			return v.Value, nil
		}
		return nil, fmt.Errorf("expected id value")
	},
	CoerceVariableValue: coerceIDValue,
	CoerceResult:        coerceIDValue,
}

// BuiltInTypes contains the GraphQL spec's built-in scalar types, keyed by name. They may not
// be redefined by a schema.
var BuiltInTypes = map[string]*ScalarType{
	"Int":     IntType,
	"Float":   FloatType,
	"String":  StringType,
	"Boolean": BooleanType,
	"ID":      IDType,
}
