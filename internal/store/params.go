package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/padhai/ent"
	"github.com/abhisek/padhai/internal/planner"
)

// paramsRepo implements ParamsRepo. A single ParameterSet row is kept;
// saving replaces it.
type paramsRepo struct {
	client *ent.Client
}

func (r *paramsRepo) Save(ctx context.Context, req *planner.GenerationRequest) error {
	b, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("decode parameters: %w", err)
	}

	existing, err := r.client.ParameterSet.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query parameters: %w", err)
		}
		_, err = r.client.ParameterSet.Create().
			SetParameters(m).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save parameters: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetParameters(m).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update parameters: %w", err)
	}
	return nil
}

func (r *paramsRepo) Load(ctx context.Context) (*planner.GenerationRequest, error) {
	row, err := r.client.ParameterSet.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query parameters: %w", err)
	}

	b, err := json.Marshal(row.Parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal stored parameters: %w", err)
	}
	var req planner.GenerationRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, fmt.Errorf("unmarshal parameters: %w", err)
	}
	return &req, nil
}
