package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan is a generated study plan. Plans are append-only: saving a
// new plan never edits an old one, it only flips the active flag.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			Immutable().
			Comment("UUID assigned at save time"),
		field.String("name").
			NotEmpty().
			Comment("Display name, e.g. \"Study Plan 2025-09-01\""),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the plan was generated"),
		field.JSON("document", map[string]any{}).
			Comment("Full plan as its canonical JSON document"),
		field.Float("total_hours").
			Default(0).
			Comment("Total planned study hours"),
		field.Bool("active").
			Default(false).
			Comment("Whether this is the plan currently in use"),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("active"),
		index.Fields("created_at"),
	}
}
