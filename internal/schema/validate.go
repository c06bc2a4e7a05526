// Package schema validates decoded alignment results against the embedded
// JSON schema before they are converted into typed values.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/statcmp/schema"
)

const resultSchemaName = "alignment_result.schema.json"

var (
	resultSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles the embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(resultSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("read result schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal result schema: %w", err)
			return
		}

		if err := compiler.AddResource(resultSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("add result schema resource: %w", err)
			return
		}

		resultSchema, err = compiler.Compile(resultSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile result schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateResult validates JSON data holding an externally tagged alignment
// result, {"WithTarget": {...}} or {"WithoutTarget": {...}}.
func ValidateResult(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := resultSchema.Validate(v); err != nil {
		return fmt.Errorf("alignment result does not match schema: %w", err)
	}

	return nil
}
