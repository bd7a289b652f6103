package ast

import "fmt"

// Inspect traverses node and all its descendants in depth-first order, calling f for
// each one. If f returns false for a node, the node's children are skipped. After the
// children of a node (or the node itself, if it has none) have been visited, f is
// called once more with nil, so callers can pop traversal-scoped state symmetrically
// with the non-nil call that pushed it.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || isNilNode(node) || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Inspect(d, f)
		}
	case *OperationDefinition:
		Inspect(n.Name, f)
		for _, d := range n.VariableDefinitions {
			Inspect(d, f)
		}
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *FragmentDefinition:
		Inspect(n.Name, f)
		Inspect(n.TypeCondition, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *VariableDefinition:
		Inspect(n.Variable, f)
		Inspect(n.Type, f)
		Inspect(n.DefaultValue, f)
	case *ListType:
		Inspect(n.Type, f)
	case *NonNullType:
		Inspect(n.Type, f)
	case *Directive:
		Inspect(n.Name, f)
		for _, a := range n.Arguments {
			Inspect(a, f)
		}
	case *SelectionSet:
		for _, s := range n.Selections {
			Inspect(s, f)
		}
	case *Field:
		Inspect(n.Alias, f)
		Inspect(n.Name, f)
		for _, a := range n.Arguments {
			Inspect(a, f)
		}
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *FragmentSpread:
		Inspect(n.FragmentName, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
	case *InlineFragment:
		Inspect(n.TypeCondition, f)
		for _, d := range n.Directives {
			Inspect(d, f)
		}
		Inspect(n.SelectionSet, f)
	case *Argument:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *NamedType:
		Inspect(n.Name, f)
	case *Variable:
		Inspect(n.Name, f)
	case *Name, *BooleanValue, *IntValue, *FloatValue, *StringValue, *EnumValue, *NullValue:
	case *ListValue:
		for _, v := range n.Values {
			Inspect(v, f)
		}
	case *ObjectValue:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case *ObjectField:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	default:
		panic(fmt.Errorf("ast: unknown node type: %T", n))
	}

	f(nil)
}

// isNilNode reports whether a non-nil interface value wraps a nil pointer. Go's
// `node == nil` check doesn't catch that case, which bites every typed-nil field
// (e.g. a *Field with no Alias).
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *Document:
		return n == nil
	case *OperationDefinition:
		return n == nil
	case *FragmentDefinition:
		return n == nil
	case *VariableDefinition:
		return n == nil
	case *ListType:
		return n == nil
	case *NonNullType:
		return n == nil
	case *Directive:
		return n == nil
	case *SelectionSet:
		return n == nil
	case *Field:
		return n == nil
	case *FragmentSpread:
		return n == nil
	case *InlineFragment:
		return n == nil
	case *Argument:
		return n == nil
	case *NamedType:
		return n == nil
	case *Variable:
		return n == nil
	case *Name:
		return n == nil
	case *BooleanValue:
		return n == nil
	case *IntValue:
		return n == nil
	case *FloatValue:
		return n == nil
	case *StringValue:
		return n == nil
	case *EnumValue:
		return n == nil
	case *NullValue:
		return n == nil
	case *ListValue:
		return n == nil
	case *ObjectValue:
		return n == nil
	case *ObjectField:
		return n == nil
	default:
		return false
	}
}
