package doubt

import "github.com/abhisek/padhai/internal/llm"

// SolutionSchema defines the JSON schema for step-by-step solutions.
var SolutionSchema = &llm.Schema{
	Name:        "doubt-solution",
	Description: "A step-by-step solution to a student's question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":        "array",
				"description": "Ordered solution steps",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short step title (3-8 words)",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "What is done in this step and why",
						},
						"formula": map[string]any{
							"type":        "string",
							"description": "Formula or working for this step, plain ASCII",
						},
					},
					"required":             []any{"title", "explanation"},
					"additionalProperties": false,
				},
			},
			"finalAnswer": map[string]any{
				"type":        "string",
				"description": "The final answer, stated plainly",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"relatedConcepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concepts worth revising next",
			},
		},
		"required":             []any{"steps", "finalAnswer", "difficulty", "relatedConcepts"},
		"additionalProperties": false,
	},
}
