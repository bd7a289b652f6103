package executor

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/errkind"
)

type Location struct {
	Line   int
	Column int
}

// path is an immutable, singly-linked response path: the sequence of field names and list
// indices from the root to the value a diagnostic concerns. Sharing the tail across siblings
// (rather than copying a slice per field) keeps per-field bookkeeping allocation-free until an
// error actually needs to render it.
type path struct {
	Prev            *path
	StringComponent string
	IntComponent    int
}

func (p *path) WithIntComponent(n int) *path {
	return &path{
		Prev:         p,
		IntComponent: n,
	}
}

func (p *path) WithStringComponent(s string) *path {
	return &path{
		Prev:            p,
		StringComponent: s,
	}
}

func (p *path) Slice() []interface{} {
	if p == nil {
		return nil
	}
	if p.StringComponent != "" {
		return append(p.Prev.Slice(), p.StringComponent)
	}
	return append(p.Prev.Slice(), p.IntComponent)
}

type Error struct {
	// Executor error messages are formatted as sentences, e.g. "An error occurred."
	Message string

	// Kind classifies the diagnostic (RESOLVER, NON_NULL_VIOLATION, CANCELED, ...). It
	// defaults to errkind.Internal, since most executor errors represent invariant violations
	// reachable only if the document passed validation it shouldn't have.
	Kind errkind.Kind

	// Nearly all errors have locations, which point to one or more relevant query tokens.
	Locations []Location

	// If the error occurred during the resolution of a particular field, a path will be present.
	Path []interface{}

	originalError error
}

func (err *Error) Error() string {
	return err.Message
}

// If the error came from a resolver, you can get the original error with Unwrap.
func (err *Error) Unwrap() error {
	return err.originalError
}

func newError(node ast.Node, message string, args ...interface{}) *Error {
	return newKindedErrorWithPath(errkind.Internal, node, nil, message, args...)
}

func newErrorWithPath(node ast.Node, path *path, message string, args ...interface{}) *Error {
	return newKindedErrorWithPath(errkind.Internal, node, path, message, args...)
}

// newKindedError is like newError, but tags the diagnostic with a specific kind rather than the
// errkind.Internal default.
func newKindedError(kind errkind.Kind, node ast.Node, message string, args ...interface{}) *Error {
	return newKindedErrorWithPath(kind, node, nil, message, args...)
}

// newKindedErrorWithPath is like newErrorWithPath, but tags the diagnostic with a specific kind.
func newKindedErrorWithPath(kind errkind.Kind, node ast.Node, path *path, message string, args ...interface{}) *Error {
	ret := &Error{
		Message: fmt.Sprintf(message, args...),
		Kind:    kind,
	}
	if node != nil {
		ret.Locations = []Location{{
			Line:   node.Position().Line,
			Column: node.Position().Column,
		}}
	}
	if path != nil {
		ret.Path = path.Slice()
	}
	return ret
}
