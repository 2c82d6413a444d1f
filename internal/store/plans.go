package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/padhai/ent"
	"github.com/abhisek/padhai/ent/studyplan"
	"github.com/abhisek/padhai/internal/planner"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, plan *planner.StudyPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	doc, err := planToMap(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.StudyPlan.Update().
		Where(studyplan.Active(true)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deactivate previous plan: %w", err)
	}

	_, err = tx.StudyPlan.Create().
		SetPlanID(plan.ID).
		SetName(plan.Name).
		SetCreatedAt(plan.CreatedAt).
		SetDocument(doc).
		SetTotalHours(plan.TotalHours).
		SetActive(true).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save plan: %w", err)
	}

	return tx.Commit()
}

func (r *planRepo) Get(ctx context.Context, id string) (*planner.StudyPlan, error) {
	row, err := r.client.StudyPlan.Query().
		Where(studyplan.PlanID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan %s: %w", id, err)
	}
	return mapToPlan(row.Document)
}

func (r *planRepo) List(ctx context.Context) ([]PlanSummary, error) {
	rows, err := r.client.StudyPlan.Query().
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	summaries := make([]PlanSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, PlanSummary{
			ID:         row.PlanID,
			Name:       row.Name,
			CreatedAt:  row.CreatedAt,
			TotalHours: row.TotalHours,
			Active:     row.Active,
		})
	}
	return summaries, nil
}

func (r *planRepo) Active(ctx context.Context) (*planner.StudyPlan, error) {
	row, err := r.client.StudyPlan.Query().
		Where(studyplan.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active plan: %w", err)
	}
	return mapToPlan(row.Document)
}

// planToMap converts a plan to map[string]any for ent JSON storage.
func planToMap(plan *planner.StudyPlan) (map[string]any, error) {
	b, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToPlan converts a stored document back to a plan.
func mapToPlan(doc map[string]any) (*planner.StudyPlan, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var plan planner.StudyPlan
	if err := json.Unmarshal(b, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}
