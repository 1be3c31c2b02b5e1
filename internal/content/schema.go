package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// contentSchema describes the on-disk shape of the tutor content file: an
// ordered array of concepts, each with an optional multiple-choice quiz.
const contentSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string", "minLength": 1},
			"summary": {"type": "string"},
			"sample_question": {"type": "string"},
			"quiz": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"question": {"type": "string", "minLength": 1},
						"options": {
							"type": "array",
							"items": {"type": "string"},
							"minItems": 2
						},
						"answer": {"type": "integer", "minimum": 0}
					},
					"required": ["question", "options", "answer"]
				}
			}
		},
		"required": ["id", "title", "summary"]
	}
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(contentSchema))
	if err != nil {
		return nil, fmt.Errorf("parse content schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://tutor-content.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile("schema://tutor-content.json")
})
