package store

import (
	"context"
	"time"

	"github.com/abhisek/padhai/internal/planner"
)

// PlanSummary is the lightweight listing form of a stored plan.
type PlanSummary struct {
	ID         string
	Name       string
	CreatedAt  time.Time
	TotalHours float64
	Active     bool
}

// PlanRepo manages stored study plans. Plans are append-only: saving a
// new plan deactivates the previous active one instead of editing it.
type PlanRepo interface {
	// Save stores a plan and makes it the active plan. An empty ID or
	// zero CreatedAt is filled in before saving.
	Save(ctx context.Context, plan *planner.StudyPlan) error

	// Get returns the plan with the given ID.
	Get(ctx context.Context, id string) (*planner.StudyPlan, error)

	// List returns summaries of all stored plans, newest first.
	List(ctx context.Context) ([]PlanSummary, error)

	// Active returns the currently active plan, or nil if none exists.
	Active(ctx context.Context) (*planner.StudyPlan, error)
}

// ProgressRepo tracks completed tasks per plan.
type ProgressRepo interface {
	// Mark records a task as complete. Marking twice is a no-op.
	Mark(ctx context.Context, planID, taskKey string) error

	// Unmark removes a completion mark. Unmarking an unmarked task is a no-op.
	Unmark(ctx context.Context, planID, taskKey string) error

	// CompletedKeys returns the set of completed task keys for a plan.
	CompletedKeys(ctx context.Context, planID string) (planner.CompletionSet, error)
}

// ParamsRepo persists the last-used generation parameters.
type ParamsRepo interface {
	// Save replaces the stored parameters.
	Save(ctx context.Context, req *planner.GenerationRequest) error

	// Load returns the stored parameters, or nil if none were saved.
	Load(ctx context.Context) (*planner.GenerationRequest, error)
}

// DoubtRecord is one solved doubt as stored in history.
type DoubtRecord struct {
	Sequence      int64
	Timestamp     time.Time
	Question      string
	ExtractedText string
	Subject       string
	Language      string
	Solution      map[string]any
	Model         string
}

// DoubtRepo manages solved doubt history.
type DoubtRepo interface {
	// Append records a solved doubt.
	Append(ctx context.Context, rec DoubtRecord) error

	// Recent returns up to limit doubts, newest first.
	Recent(ctx context.Context, limit int) ([]DoubtRecord, error)
}

// RequestLogEntry captures the data for a single LLM API call.
type RequestLogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLogRecord is a stored request log entry.
type RequestLogRecord struct {
	Sequence  int64
	Timestamp time.Time
	RequestLogEntry
}

// RequestLogTotals aggregates logged LLM usage.
type RequestLogTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PurposeUsage aggregates usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates usage per model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// RequestLogRepo provides append and query access to the LLM request log.
type RequestLogRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, entry RequestLogEntry) error

	// Recent returns up to limit log records, newest first.
	Recent(ctx context.Context, limit int) ([]RequestLogRecord, error)

	// Totals returns aggregate usage across all logged requests.
	Totals(ctx context.Context) (RequestLogTotals, error)

	// UsageByPurpose aggregates usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// UsageByModel aggregates usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
