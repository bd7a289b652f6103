package schema

import (
	"fmt"
	"regexp"
	"strings"
)

type Schema struct {
	directives map[string]*DirectiveDefinition
	namedTypes map[string]NamedType

	query        *ObjectType
	mutation     *ObjectType
	subscription *ObjectType

	interfaceImplementations map[string][]*ObjectType
}

func (s *Schema) QueryType() *ObjectType {
	return s.query
}

func (s *Schema) MutationType() *ObjectType {
	return s.mutation
}

func (s *Schema) SubscriptionType() *ObjectType {
	return s.subscription
}

func (s *Schema) NamedType(name string) NamedType {
	return s.namedTypes[name]
}

// NamedTypes returns every named type known to the schema, keyed by name.
func (s *Schema) NamedTypes() map[string]NamedType {
	return s.namedTypes
}

// Directives returns every directive definition known to the schema, keyed by name.
func (s *Schema) Directives() map[string]*DirectiveDefinition {
	return s.directives
}

// DirectiveDefinition returns the definition for the named directive, or nil if no such directive
// is known to the schema.
func (s *Schema) DirectiveDefinition(name string) *DirectiveDefinition {
	return s.directives[name]
}

// InterfaceImplementations returns the object types that implement the named interface.
func (s *Schema) InterfaceImplementations(name string) []*ObjectType {
	return s.interfaceImplementations[name]
}

var nameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

func New(def *SchemaDefinition) (*Schema, error) {
	var err error
	schema := &Schema{
		directives: map[string]*DirectiveDefinition{
			"skip":    SkipDirective,
			"include": IncludeDirective,
		},
		namedTypes:               map[string]NamedType{},
		query:                    def.Query,
		mutation:                 def.Mutation,
		subscription:             def.Subscription,
		interfaceImplementations: map[string][]*ObjectType{},
	}

	if schema.query == nil {
		return nil, fmt.Errorf("schemas must define the query operation")
	}

	for name, d := range def.Directives {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return nil, fmt.Errorf("illegal directive name: %v", name)
		} else if existing, ok := schema.directives[name]; ok && existing != d {
			return nil, fmt.Errorf("%v directive may not be overridden", name)
		}
		schema.directives[name] = d
	}

	Inspect(def, func(node interface{}) bool {
		if err != nil {
			return false
		}

		if namedType, ok := node.(NamedType); ok {
			if name := namedType.NamedType(); !isName(name) || strings.HasPrefix(name, "__") {
				err = fmt.Errorf("illegal type name: %v", name)
			} else if existing, ok := schema.namedTypes[name]; ok && existing != namedType {
				err = fmt.Errorf("multiple definitions for named type: %v", name)
			} else if builtin, ok := BuiltInTypes[name]; ok && namedType != builtin {
				err = fmt.Errorf("%v builtin may not be overridden", name)
			} else if ok {
				// already visited
				return false
			} else {
				schema.namedTypes[name] = namedType
			}
		}

		if obj, ok := node.(*ObjectType); ok {
			for _, iface := range obj.ImplementedInterfaces {
				schema.interfaceImplementations[iface.Name] = append(schema.interfaceImplementations[iface.Name], obj)
			}
		}

		if err == nil {
			if n, ok := node.(interface {
				shallowValidate() error
			}); ok {
				err = n.shallowValidate()
			}
		}

		return err == nil
	})

	if err != nil {
		return nil, err
	}
	return schema, nil
}

type SchemaDefinition struct {
	// Directives declares the custom directive definitions available in the schema, keyed by
	// name. Directives that are never referenced anywhere else in the schema still need to be
	// declared here in order to be usable in queries.
	Directives map[string]*DirectiveDefinition

	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType

	// AdditionalTypes lists named types that should be part of the schema even though they
	// aren't otherwise reachable from the root operation types (for example, object types that
	// are only ever returned via interfaces, or types that exist solely to be targeted by
	// introspection).
	AdditionalTypes []NamedType
}

type Argument struct {
	Name  string
	Value interface{}
}

type Type interface {
	String() string
	IsInputType() bool
	IsOutputType() bool
	IsSubTypeOf(Type) bool
	IsSameType(Type) bool

	// TypeRequiredFeatures returns the set of schema features that must be enabled for this
	// type to be used. Most types require none.
	TypeRequiredFeatures() FeatureSet
}

type NamedType interface {
	Type
	NamedType() string
}

type WrappedType interface {
	Type
	Unwrap() Type
}

func UnwrapType(t Type) Type {
	for {
		if wrapped, ok := t.(WrappedType); ok {
			t = wrapped.Unwrap()
		} else {
			break
		}
	}
	return t
}
