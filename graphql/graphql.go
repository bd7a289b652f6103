package graphql

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ccbrown/gqlcore/graphql/ast"
	"github.com/ccbrown/gqlcore/graphql/errkind"
	"github.com/ccbrown/gqlcore/graphql/executor"
	"github.com/ccbrown/gqlcore/graphql/parser"
	"github.com/ccbrown/gqlcore/graphql/schema"
	"github.com/ccbrown/gqlcore/graphql/validator"
)

type Type = schema.Type
type ObjectType = schema.ObjectType
type InterfaceType = schema.InterfaceType
type EnumType = schema.EnumType
type ScalarType = schema.ScalarType
type UnionType = schema.UnionType
type InputObjectType = schema.InputObjectType
type NonNullType = schema.NonNullType
type ListType = schema.ListType

type FieldContext = schema.FieldContext
type InputValueDefinition = schema.InputValueDefinition
type FieldDefinition = schema.FieldDefinition

var IDType = schema.IDType

func NewNonNullType(t Type) *NonNullType {
	return schema.NewNonNullType(t)
}

func NewListType(t Type) *ListType {
	return schema.NewListType(t)
}

type Schema = schema.Schema
type SchemaDefinition = schema.SchemaDefinition

func NewSchema(def *SchemaDefinition) (*Schema, error) {
	s, err := schema.New(def)
	if err != nil {
		return nil, errors.Wrap(err, "error building graphql schema")
	}
	return s, nil
}

type Request struct {
	Context context.Context

	Query string

	// In some cases, you may want to optimize by providing the parsed and validated AST document
	// instead of Query.
	Document *ast.Document

	Schema         *Schema
	OperationName  string
	VariableValues map[string]interface{}
	InitialValue   interface{}

	// FailOnFirstError stops validation as soon as the first error is found, rather than
	// collecting every problem with the document. It has no effect once execution begins;
	// resolver and completion errors are always collected in full.
	FailOnFirstError bool
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Error struct {
	Message   string        `json:"message"`
	Locations []Location    `json:"locations,omitempty"`
	Path      []interface{} `json:"path,omitempty"`

	// Extensions carries out-of-band metadata about the error. The "code" key holds the
	// error's kind (e.g. "VALIDATION", "NON_NULL_VIOLATION"), letting clients branch on error
	// category without string-matching messages.
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func errorKindExtensions(kind errkind.Kind) map[string]interface{} {
	if kind == "" {
		return nil
	}
	return map[string]interface{}{"code": string(kind)}
}

type Response struct {
	Data   *interface{} `json:"data,omitempty"`
	Errors []*Error     `json:"errors,omitempty"`
}

// ParseAndValidate parses a query document and validates it against a schema, without
// executing it. It's useful for tooling that needs to type-check a document (for example,
// generating client-side types from a query) without resolving any fields.
//
// If failOnFirstError is set, validation stops at the first error found instead of collecting
// every problem with the document.
func ParseAndValidate(query string, s *Schema, failOnFirstError bool, extraRules ...validator.Rule) (*ast.Document, []*Error) {
	doc, parseErrs := parser.ParseDocument([]byte(query))
	if len(parseErrs) > 0 {
		errs := make([]*Error, len(parseErrs))
		for i, err := range parseErrs {
			errs[i] = &Error{
				Message: err.Message,
				Locations: []Location{{
					Line:   err.Location.Line,
					Column: err.Location.Column,
				}},
				Extensions: errorKindExtensions(errkind.Parse),
			}
		}
		return nil, errs
	}

	if validationErrs := validator.ValidateDocument(doc, s, failOnFirstError, extraRules...); len(validationErrs) > 0 {
		errs := make([]*Error, len(validationErrs))
		for i, err := range validationErrs {
			locations := make([]Location, len(err.Locations))
			for j, loc := range err.Locations {
				locations[j].Line = loc.Line
				locations[j].Column = loc.Column
			}
			errs[i] = &Error{Message: err.Message, Locations: locations, Extensions: errorKindExtensions(err.Kind)}
		}
		return nil, errs
	}

	return doc, nil
}

func Execute(r *Request) *Response {
	ret := &Response{}
	doc := r.Document
	if doc == nil {
		parsed, parseErrs := parser.ParseDocument([]byte(r.Query))
		if len(parseErrs) > 0 {
			for _, err := range parseErrs {
				ret.Errors = append(ret.Errors, &Error{
					Message: err.Message,
					Locations: []Location{
						Location{
							Line:   err.Location.Line,
							Column: err.Location.Column,
						},
					},
					Extensions: errorKindExtensions(errkind.Parse),
				})
			}
			return ret
		}
		if validationErrs := validator.ValidateDocument(parsed, r.Schema, r.FailOnFirstError); len(validationErrs) > 0 {
			for _, err := range validationErrs {
				locations := make([]Location, len(err.Locations))
				for i, loc := range err.Locations {
					locations[i].Line = loc.Line
					locations[i].Column = loc.Column
				}
				ret.Errors = append(ret.Errors, &Error{
					Message:    err.Message,
					Locations:  locations,
					Extensions: errorKindExtensions(err.Kind),
				})
			}
			return ret
		}
		doc = parsed
	}

	data, errs := executor.ExecuteRequest(r.Context, &executor.Request{
		Document:       doc,
		Schema:         r.Schema,
		OperationName:  r.OperationName,
		VariableValues: r.VariableValues,
		InitialValue:   r.InitialValue,
	})
	var dataInterface interface{}
	dataInterface = data
	ret.Data = &dataInterface
	for _, err := range errs {
		locations := make([]Location, len(err.Locations))
		for i, loc := range err.Locations {
			locations[i].Line = loc.Line
			locations[i].Column = loc.Column
		}
		ret.Errors = append(ret.Errors, &Error{
			Message:    err.Message,
			Locations:  locations,
			Path:       err.Path,
			Extensions: errorKindExtensions(err.Kind),
		})
	}
	return ret
}
