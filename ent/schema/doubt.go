package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Doubt records a solved doubt: the question the student asked, any text
// extracted from an attached image, and the structured solution returned
// by the solver.
type Doubt struct {
	ent.Schema
}

func (Doubt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Doubt) Fields() []ent.Field {
	return []ent.Field{
		field.String("question").
			NotEmpty().
			Comment("Question text as submitted or extracted"),
		field.String("extracted_text").
			Default("").
			Comment("OCR text when the question came from an image"),
		field.String("subject").
			Default("").
			Comment("Subject hint supplied by the student, if any"),
		field.String("language").
			Default("english").
			Comment("Response language the student asked for"),
		field.JSON("solution", map[string]any{}).
			Comment("Structured step-by-step solution"),
		field.String("model").
			Default("").
			Comment("Model ID that produced the solution"),
	}
}

func (Doubt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
