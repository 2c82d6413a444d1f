package store

import (
	"context"
	"fmt"

	"github.com/abhisek/padhai/ent"
	"github.com/abhisek/padhai/ent/progressmark"
	"github.com/abhisek/padhai/internal/planner"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Mark(ctx context.Context, planID, taskKey string) error {
	_, err := r.client.ProgressMark.Create().
		SetPlanID(planID).
		SetTaskKey(taskKey).
		Save(ctx)
	if err != nil {
		// The unique (plan_id, task_key) index makes re-marking a no-op.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("mark %s: %w", taskKey, err)
	}
	return nil
}

func (r *progressRepo) Unmark(ctx context.Context, planID, taskKey string) error {
	_, err := r.client.ProgressMark.Delete().
		Where(
			progressmark.PlanID(planID),
			progressmark.TaskKey(taskKey),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("unmark %s: %w", taskKey, err)
	}
	return nil
}

func (r *progressRepo) CompletedKeys(ctx context.Context, planID string) (planner.CompletionSet, error) {
	keys, err := r.client.ProgressMark.Query().
		Where(progressmark.PlanID(planID)).
		Select(progressmark.FieldTaskKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed keys: %w", err)
	}

	set := planner.NewCompletionSet()
	for _, k := range keys {
		set.Add(k)
	}
	return set, nil
}
