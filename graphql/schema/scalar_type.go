package schema

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

// ScalarType implements the three-operation scalar contract required by the GraphQL spec:
// literals are coerced out of query documents, variable values are coerced out of
// already-decoded request input, and results are coerced (serialized) for the response.
type ScalarType struct {
	Name        string
	Description string
	Directives  []*Directive

	// CoerceLiteral converts an AST literal into the scalar's internal representation. It
	// should return an error if the literal can't represent a value of this type.
	CoerceLiteral func(ast.Value) (interface{}, error)

	// CoerceVariableValue converts an already-decoded value (e.g. from a JSON request
	// variable) into the scalar's internal representation.
	CoerceVariableValue func(interface{}) (interface{}, error)

	// CoerceResult converts the scalar's internal representation into a value suitable for
	// inclusion in a response.
	CoerceResult func(interface{}) (interface{}, error)
}

func (t *ScalarType) String() string {
	return t.Name
}

func (t *ScalarType) IsInputType() bool {
	return true
}

func (t *ScalarType) IsOutputType() bool {
	return true
}

func (t *ScalarType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *ScalarType) IsSameType(other Type) bool {
	return t == other
}

func (t *ScalarType) NamedType() string {
	return t.Name
}

func (t *ScalarType) TypeRequiredFeatures() FeatureSet {
	return nil
}

func (t *ScalarType) shallowValidate() error {
	if t.CoerceLiteral == nil || t.CoerceVariableValue == nil || t.CoerceResult == nil {
		return fmt.Errorf("%v must define CoerceLiteral, CoerceVariableValue, and CoerceResult", t.Name)
	}
	return nil
}

func IsScalarType(t Type) bool {
	_, ok := t.(*ScalarType)
	return ok
}
