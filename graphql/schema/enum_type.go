package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ccbrown/gqlcore/graphql/ast"
)

// EnumValueDefinition defines a single member of an EnumType.
type EnumValueDefinition struct {
	Description       string
	Directives        []*Directive
	DeprecationReason string

	// Value is the value this member coerces to and serializes from. If nil, the member's map
	// key (its external GraphQL name) is used as the value.
	Value interface{}
}

// EnumType implements a GraphQL enum. It maintains three lookup indexes: literals coerce by
// exact (case-sensitive) member name, variable values coerce by case-insensitive member name
// (since they often arrive from systems that don't preserve GraphQL's naming conventions), and
// results serialize by looking up the member whose Value matches the resolver's return value.
type EnumType struct {
	Name        string
	Description string
	Directives  []*Directive
	Values      map[string]*EnumValueDefinition

	indexOnce  sync.Once
	byValue    map[interface{}]string
	byFoldName map[string]string
}

func (t *EnumType) String() string {
	return t.Name
}

func (t *EnumType) IsInputType() bool {
	return true
}

func (t *EnumType) IsOutputType() bool {
	return true
}

func (t *EnumType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *EnumType) IsSameType(other Type) bool {
	return t == other
}

func (t *EnumType) NamedType() string {
	return t.Name
}

func (t *EnumType) TypeRequiredFeatures() FeatureSet {
	return nil
}

func (t *EnumType) buildIndex() {
	t.indexOnce.Do(func() {
		t.byValue = make(map[interface{}]string, len(t.Values))
		t.byFoldName = make(map[string]string, len(t.Values))
		for name, def := range t.Values {
			v := def.Value
			if v == nil {
				v = name
			}
			t.byValue[v] = name
			t.byFoldName[strings.ToLower(name)] = name
		}
	})
}

// CoerceLiteral coerces an enum value literal, matching the member name exactly.
func (t *EnumType) CoerceLiteral(node ast.Value) (interface{}, error) {
	v, ok := node.(*ast.EnumValue)
	if !ok {
		return nil, fmt.Errorf("expected enum value for %v", t.Name)
	}
	def, ok := t.Values[v.Value]
	if !ok {
		return nil, fmt.Errorf("%v is not a valid value for %v", v.Value, t.Name)
	}
	if def.Value != nil {
		return def.Value, nil
	}
	return v.Value, nil
}

// CoerceVariableValue coerces a decoded variable value, matching the member name without
// regard to case.
func (t *EnumType) CoerceVariableValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string for %v", t.Name)
	}
	t.buildIndex()
	name, ok := t.byFoldName[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("%v is not a valid value for %v", s, t.Name)
	}
	def := t.Values[name]
	if def.Value != nil {
		return def.Value, nil
	}
	return name, nil
}

// CoerceResult serializes a resolver's return value to the member name whose Value matches.
func (t *EnumType) CoerceResult(v interface{}) (interface{}, error) {
	t.buildIndex()
	if name, ok := t.byValue[v]; ok {
		return name, nil
	}
	if s, ok := v.(string); ok {
		if _, ok := t.Values[s]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%v is not a valid value for %v", v, t.Name)
}

func (d *EnumType) shallowValidate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%v must have at least one field", d.Name)
	}
	for name := range d.Values {
		if !isName(name) || name == "true" || name == "false" || name == "null" {
			return fmt.Errorf("illegal field name: %v", name)
		}
	}
	return nil
}

func IsEnumType(t Type) bool {
	_, ok := t.(*EnumType)
	return ok
}
