// Package errkind enumerates the categories of diagnostic a document can produce, shared by
// the validator and the executor so that every error in the pipeline carries a consistent,
// machine-readable classification alongside its human-readable message.
package errkind

// Kind classifies a diagnostic. It's surfaced on the wire as the "code" extension of a
// GraphQL error, which lets clients branch on error category without string-matching messages.
type Kind string

const (
	// Parse indicates a document failed to parse. No Kind value accompanies these errors
	// directly; parser errors are translated at the boundary in graphql.Execute.
	Parse Kind = "PARSE"

	// Validation is the default kind for diagnostics produced by the validation rules.
	Validation Kind = "VALIDATION"

	// VariableCoercion indicates a variable's provided or default value couldn't be coerced
	// against its declared type, or a required variable was missing.
	VariableCoercion Kind = "VARIABLE_COERCION"

	// LiteralCoercion indicates a query literal's shape was incompatible with the type it was
	// coerced against (a field or directive argument).
	LiteralCoercion Kind = "LITERAL_COERCION"

	// ValueCoercion indicates an externally-supplied value (typically a variable payload
	// value) was incompatible with the type it was coerced against.
	ValueCoercion Kind = "VALUE_COERCION"

	// Serialization indicates a resolved value couldn't be serialized by its scalar or enum
	// type on the way out.
	Serialization Kind = "SERIALIZATION"

	// Resolver indicates a field resolver returned or panicked with an error.
	Resolver Kind = "RESOLVER"

	// NonNullViolation indicates a non-null field completed to null.
	NonNullViolation Kind = "NON_NULL_VIOLATION"

	// ListExpected indicates a list field's resolver returned a non-iterable value.
	ListExpected Kind = "LIST_EXPECTED"

	// AbstractResolution indicates an interface or union field's resolver returned a value
	// that no member/implementing type claimed via IsTypeOf.
	AbstractResolution Kind = "ABSTRACT_RESOLUTION"

	// AmbiguousOperation indicates the operation to execute couldn't be determined: either no
	// operation matched the given name, or more than one did.
	AmbiguousOperation Kind = "AMBIGUOUS_OPERATION"

	// Canceled indicates the request's context was canceled before execution completed.
	Canceled Kind = "CANCELED"

	// Internal indicates a programming error or invariant violation rather than a problem
	// with the request itself.
	Internal Kind = "INTERNAL"
)
