package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema is the JSON schema every deck file must satisfy before it is
// decoded. Structural rules the schema cannot express (unique ids, unlock
// references) are enforced by Deck.Validate afterward.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "string"},
		"name": map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"flashcards", "quiz", "learning"},
		},
		"cards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"card", "info"},
					},
					"id":     map[string]any{"type": "string", "minLength": 1},
					"front":  map[string]any{"type": "string"},
					"back":   map[string]any{"type": "string"},
					"prompt": map[string]any{"type": "string"},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":   map[string]any{"type": "string", "minLength": 1},
								"text": map[string]any{"type": "string"},
							},
							"required":             []any{"id", "text"},
							"additionalProperties": false,
						},
					},
					"answer":  map[string]any{"type": "string"},
					"title":   map[string]any{"type": "string"},
					"body":    map[string]any{"type": "string"},
					"unlocks": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"review": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"interval":      map[string]any{"type": "integer", "minimum": 0},
							"ease":          map[string]any{"type": "number", "minimum": 0},
							"due":           map[string]any{"type": "string"},
							"last_reviewed": map[string]any{"type": "string"},
							"lapses":        map[string]any{"type": "integer", "minimum": 0},
							"mastery":       map[string]any{"type": "number", "minimum": 0, "maximum": 1},
							"suspended":     map[string]any{"type": "boolean"},
							"tags":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"additionalProperties": false,
					},
				},
				"required":             []any{"id"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "kind", "cards"},
	"additionalProperties": false,
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// compiledDeckSchema compiles deckSchema once and caches the result.
func compiledDeckSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		raw, err := json.Marshal(deckSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileSchemaErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://deck.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile(url)
	})
	return compiledSchema, compileSchemaErr
}
