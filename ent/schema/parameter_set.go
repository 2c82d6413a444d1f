package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ParameterSet stores the last-used generation parameters so the plan
// builder resumes where the student left off. A single row is kept per
// database; saving replaces it.
type ParameterSet struct {
	ent.Schema
}

func (ParameterSet) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("parameters", map[string]any{}).
			Comment("GenerationRequest as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the parameters were last saved"),
	}
}
