package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressMark is one completed task in a plan. The (plan_id, task_key)
// pair is unique so marking a task twice is a no-op, keeping the
// completed set idempotent.
type ProgressMark struct {
	ent.Schema
}

func (ProgressMark) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Immutable().
			Comment("UUID of the owning plan"),
		field.String("task_key").
			NotEmpty().
			Immutable().
			Comment("Completion key: <ISO date>-<subject>-<topic>"),
		field.Time("marked_at").
			Default(time.Now).
			Comment("When the task was marked complete"),
	}
}

func (ProgressMark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("plan_id", "task_key").Unique(),
	}
}
