package dataset

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func timingSchema() map[string]any {
	number := map[string]any{"type": "number", "minimum": 0}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"count":  map[string]any{"type": "integer", "minimum": 0},
			"mean":   number,
			"median": number,
			"stdDev": number,
			"min":    number,
			"max":    number,
			"p25":    number,
			"p75":    number,
			"p95":    number,
		},
		"required": []string{"count", "mean", "median", "min", "max"},
	}
}

// documentSchema describes the structural shape of a benchmark document.
// Cross-field invariants are checked separately by Validate.
func documentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"models": map[string]any{
				"type":          "object",
				"minProperties": 1,
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":         map[string]any{"type": "string", "minLength": 1},
						"organization": map[string]any{"type": "string"},
						"parameters":   map[string]any{"type": "string"},
						"color":        map[string]any{"type": "string"},
					},
					"required": []string{"name", "color"},
				},
			},
			"modelOrder": map[string]any{
				"type":        "array",
				"minItems":    1,
				"uniqueItems": true,
				"items":       map[string]any{"type": "string"},
			},
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":        map[string]any{"type": "string", "minLength": 1},
						"name":      map[string]any{"type": "string"},
						"shortName": map[string]any{"type": "string"},
						"questions": map[string]any{"type": "integer", "minimum": 0},
						"results": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"correct":   map[string]any{"type": "integer", "minimum": 0},
									"incorrect": map[string]any{"type": "integer", "minimum": 0},
									"accuracy":  map[string]any{"type": "number"},
									"timing":    timingSchema(),
								},
								"required": []string{"correct", "incorrect", "accuracy"},
							},
						},
						"topics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"topic":   map[string]any{"type": "string", "minLength": 1},
									"samples": map[string]any{"type": "integer", "minimum": 0},
									"accuracy": map[string]any{
										"type":                 "object",
										"additionalProperties": map[string]any{"type": "number"},
									},
								},
								"required": []string{"topic", "samples", "accuracy"},
							},
						},
					},
					"required": []string{"id", "name", "questions", "results"},
				},
			},
		},
		"required": []string{"models", "modelOrder", "categories"},
	}
}

// checkSchema validates raw JSON against documentSchema.
func checkSchema(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(documentSchema())
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(errs, ", "))
}
