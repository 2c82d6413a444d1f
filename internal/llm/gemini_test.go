package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"finalAnswer": map[string]any{"type": "string"},
			"stepCount":   map[string]any{"type": "integer"},
			"difficulty":  map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"relatedConcepts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"finalAnswer", "difficulty"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["finalAnswer"].Type != "STRING" {
		t.Fatalf("expected STRING for finalAnswer, got %s", schema.Properties["finalAnswer"].Type)
	}
	if schema.Properties["stepCount"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for stepCount, got %s", schema.Properties["stepCount"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["relatedConcepts"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for relatedConcepts, got %s", schema.Properties["relatedConcepts"].Type)
	}
	if schema.Properties["relatedConcepts"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for relatedConcepts items, got %s", schema.Properties["relatedConcepts"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
