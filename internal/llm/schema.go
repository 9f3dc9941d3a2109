package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ProjectSchema is the structured-output contract for remote extraction. The
// same document is sent to the model as a response constraint and compiled
// locally to validate the reply before trusting it.
type ProjectSchema struct {
	doc      map[string]any
	compiled *jsonschema.Schema
}

// NewProjectSchema builds and compiles the milestone/project JSON Schema
// (draft 2020-12 subset).
func NewProjectSchema() (*ProjectSchema, error) {
	milestone := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"milestoneLabel": map[string]any{"type": "string", "minLength": 1},
			"title":          map[string]any{"type": "string"},
			"scope":          map[string]any{"type": "string"},
			"tasks":          stringList(),
			"exclusions":     stringList(),
			"estimatedHours": nonNegativeNumber(),
			"priceEstimate":  nonNegativeNumber(),
		},
		"required": []string{
			"milestoneLabel", "title", "scope", "tasks",
			"exclusions", "estimatedHours", "priceEstimate",
		},
	}

	doc := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"milestones": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    milestone,
			},
			"totalBallpark": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"hours": nonNegativeNumber(),
					"price": nonNegativeNumber(),
				},
				"required": []string{"hours", "price"},
			},
		},
		"required": []string{"milestones"},
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("project.schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("project.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &ProjectSchema{doc: doc, compiled: compiled}, nil
}

// MustProjectSchema is NewProjectSchema for static construction; the schema
// document is a compile-time constant, so failure here is a programming error.
func MustProjectSchema() *ProjectSchema {
	s, err := NewProjectSchema()
	if err != nil {
		panic(err)
	}
	return s
}

// Doc returns the schema as a generic map for embedding in request bodies.
func (s *ProjectSchema) Doc() map[string]any { return s.doc }

// Validate checks raw JSON against the compiled schema.
func (s *ProjectSchema) Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

func stringList() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

func nonNegativeNumber() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}
