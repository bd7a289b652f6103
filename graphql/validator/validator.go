package validator

import (
	"fmt"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/errkind"
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// Location identifies a line and column within a GraphQL document.
type Location struct {
	Line   int
	Column int
}

// Error describes a single validation failure.
type Error struct {
	Message   string
	Locations []Location

	// Kind classifies the diagnostic. It defaults to errkind.Validation; rules that perform
	// coercion (variables, literals) tag their errors with a more specific kind.
	Kind errkind.Kind

	// Secondary errors are produced as a side effect of a more specific error elsewhere in the
	// document (e.g. a value fails coercion both because its type is wrong and because it's
	// required). Callers that only care about primary errors can filter these out.
	isSecondary bool
}

func (err *Error) Error() string {
	return err.Message
}

// NewError creates an error with no associated document location.
func NewError(message string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(message, args...),
		Kind:    errkind.Validation,
	}
}

// newError creates an error, optionally associated with a document location. If the first
// argument implements ast.Node, it's used as the error's location and the remaining arguments
// are treated as a format string and its arguments. Otherwise the first argument is the format
// string.
func newError(args ...interface{}) *Error {
	return newKindedErrorWithSeverity(errkind.Validation, false, args...)
}

// newSecondaryError is like newError, but marks the resulting error as secondary.
func newSecondaryError(args ...interface{}) *Error {
	return newKindedErrorWithSeverity(errkind.Validation, true, args...)
}

// newKindedError is like newError, but tags the diagnostic with a specific kind rather than the
// errkind.Validation default. It's used by rules that perform coercion, where a more specific
// kind (VARIABLE_COERCION, LITERAL_COERCION, ...) is more useful to callers than VALIDATION.
func newKindedError(kind errkind.Kind, args ...interface{}) *Error {
	return newKindedErrorWithSeverity(kind, false, args...)
}

// newKindedSecondaryError is like newSecondaryError, but tags the diagnostic with a specific
// kind.
func newKindedSecondaryError(kind errkind.Kind, args ...interface{}) *Error {
	return newKindedErrorWithSeverity(kind, true, args...)
}

func newErrorWithSeverity(isSecondary bool, args ...interface{}) *Error {
	return newKindedErrorWithSeverity(errkind.Validation, isSecondary, args...)
}

func newKindedErrorWithSeverity(kind errkind.Kind, isSecondary bool, args ...interface{}) *Error {
	ret := &Error{
		Kind:        kind,
		isSecondary: isSecondary,
	}

	if len(args) == 0 {
		return ret
	}

	if node, ok := args[0].(ast.Node); ok {
		if node != nil {
			pos := node.Position()
			ret.Locations = []Location{{
				Line:   pos.Line,
				Column: pos.Column,
			}}
		}
		if len(args) > 1 {
			message, _ := args[1].(string)
			ret.Message = fmt.Sprintf(message, args[2:]...)
		}
		return ret
	}

	message, _ := args[0].(string)
	ret.Message = fmt.Sprintf(message, args[1:]...)
	return ret
}

// Rule validates some aspect of a document, returning any errors found. Rules are given access
// to precomputed type information for the document.
type Rule func(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error

// ValidateDocument runs every standard validation rule against the document, plus any additional
// rules supplied by the caller (for example, a request-specific cost limit).
//
// If failOnFirstError is set, the rules stop running as soon as one of them reports a primary
// (non-secondary) error, and only that error is returned. This trades a complete diagnostic
// report for faster feedback, which callers want when they intend to reject the document outright
// on the first problem rather than report everything wrong with it.
func ValidateDocument(doc *ast.Document, s *schema.Schema, failOnFirstError bool, extraRules ...Rule) []*Error {
	typeInfo := NewTypeInfo(doc, s)
	var all []*Error
	for _, f := range []Rule{
		validateDocumentExecutableDefinitions,
		validateOperationsNameUniqueness,
		validateOperationsLoneAnonymousOperation,
		validateOperationsSingleRootField,
		validateOperationsSupportedType,
		validateVariablesNameUniqueness,
		validateVariablesInputTypes,
		validateVariables,
		validateArguments,
		validateFragments,
		validateFieldsSelectionsOnObjectsInterfacesAndUnions,
		validateFieldsLeafFieldSelections,
		validateFieldsFieldSelectionMerging,
		validateDirectives,
		validateValues,
	} {
		errs := f(doc, s, typeInfo)
		all = append(all, errs...)
		if failOnFirstError {
			if err := firstPrimaryError(errs); err != nil {
				return []*Error{err}
			}
		}
	}
	for _, f := range extraRules {
		errs := f(doc, s, typeInfo)
		all = append(all, errs...)
		if failOnFirstError {
			if err := firstPrimaryError(errs); err != nil {
				return []*Error{err}
			}
		}
	}

	// Secondary errors are reported alongside a more specific primary error elsewhere in the
	// document, so they'd otherwise just be noise for callers.
	var ret []*Error
	for _, err := range all {
		if !err.isSecondary {
			ret = append(ret, err)
		}
	}
	return ret
}

func firstPrimaryError(errs []*Error) *Error {
	for _, err := range errs {
		if !err.isSecondary {
			return err
		}
	}
	return nil
}
