package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// poolSchema is the structural contract a pool file must meet to be
// answerable and scorable: a prompt, at least two options, and a
// non-negative answer index. Anything beyond that is the bank author's
// problem.
const poolSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string"},
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 2
			},
			"answer": {"type": "integer", "minimum": 0},
			"explanation": {"type": "string"}
		},
		"required": ["question", "options", "answer"]
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPoolSchema compiles the pool schema once and caches it.
func compiledPoolSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(poolSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse pool schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("qdrill://pool.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("qdrill://pool.json")
	})
	return compiledSchema, compileErr
}

// validatePool checks a parsed pool file against the schema.
func validatePool(parsed any) error {
	sch, err := compiledPoolSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("pool file schema: %w", err)
	}
	return nil
}
