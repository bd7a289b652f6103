package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ccbrown/gqlcore/graphql"
	"github.com/ccbrown/gqlcore/graphql/schema/introspection"
)

// LoadSchema reads a schema from the introspection JSON response of another GraphQL server
// (the shape produced by the standard __schema introspection query) and builds a schema that
// can be validated against, though not served.
func LoadSchema(path string) (*graphql.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var result struct {
		Data struct {
			Schema introspection.SchemaData `json:"__schema"`
		} `json:"data"`
	}
	if err := json.NewDecoder(f).Decode(&result); err != nil {
		return nil, err
	}

	def, err := result.Data.Schema.GetSchemaDefinition()
	if err != nil {
		return nil, err
	}

	return graphql.NewSchema(def)
}

// Check parses and validates every file matched by inputGlobs against s, returning one error
// per parse or validation error found, each prefixed with its file's path. If failOnFirstError
// is set, each file's validation stops at its first error rather than collecting every problem
// with it.
func Check(s *graphql.Schema, inputGlobs []string, failOnFirstError bool) []error {
	var errs []error
	for _, glob := range inputGlobs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, match := range matches {
			source, err := ioutil.ReadFile(match)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, queryErrs := graphql.ParseAndValidate(string(source), s, failOnFirstError); len(queryErrs) > 0 {
				for _, queryErr := range queryErrs {
					errs = append(errs, fmt.Errorf("%v: %v", match, queryErr.Message))
				}
			}
		}
	}
	return errs
}

func main() {
	schemaPath := pflag.String("schema", "", "the path to the schema's introspection json file")
	failFast := pflag.Bool("fail-fast", false, "stop validating each file at its first error")
	pflag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "the --schema flag is required")
		os.Exit(1)
	}

	if pflag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one query file glob is required")
		os.Exit(1)
	}

	s, err := LoadSchema(*schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading schema: "+err.Error())
		os.Exit(1)
	}

	if errs := Check(s, pflag.Args(), *failFast); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
