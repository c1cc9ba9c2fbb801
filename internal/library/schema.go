package library

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// librarySchema is the JSON Schema for an exported library file: an
// array of explanation records. Imports are validated against it before
// anything is merged.
const librarySchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "concept", "level", "timestamp", "explanation"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"concept": {"type": "string", "minLength": 1},
			"fullQuestion": {"type": "string"},
			"level": {
				"type": "string",
				"enum": ["beginner", "elementary", "intermediate", "advanced", "expert"]
			},
			"timestamp": {"type": "string"},
			"explanation": {
				"type": "object",
				"required": ["simple", "analogy", "example", "whyItMatters", "relatedConcepts"],
				"properties": {
					"simple": {"type": "string"},
					"analogy": {"type": "string"},
					"example": {"type": "string"},
					"whyItMatters": {"type": "string"},
					"relatedConcepts": {
						"type": "array",
						"items": {"type": "string"},
						"maxItems": 5
					}
				}
			},
			"category": {"type": "string"},
			"saved": {"type": "boolean"}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateImport checks raw import data against the library schema.
func validateImport(data []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(librarySchema)))
		if err != nil {
			schemaErr = fmt.Errorf("parse library schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://library.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://library.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
