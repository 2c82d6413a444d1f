package store

import (
	"context"
	"fmt"

	"github.com/abhisek/padhai/ent"
	"github.com/abhisek/padhai/ent/llmrequestlog"
)

// requestLogRepo implements RequestLogRepo backed by ent and the global
// sequence counter.
type requestLogRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *requestLogRepo) Append(ctx context.Context, entry RequestLogEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestLog.Create().
		SetSequence(seqNum).
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetErrorMessage(entry.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save request log: %w", err)
	}
	return nil
}

func (r *requestLogRepo) Recent(ctx context.Context, limit int) ([]RequestLogRecord, error) {
	q := r.client.LLMRequestLog.Query().
		Order(ent.Desc(llmrequestlog.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}

	recs := make([]RequestLogRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, RequestLogRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			RequestLogEntry: RequestLogEntry{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return recs, nil
}

func (r *requestLogRepo) Totals(ctx context.Context) (RequestLogTotals, error) {
	// Raw SQL: COALESCE keeps the sums at zero when the log is empty,
	// which ent's aggregate scan does not handle.
	var t RequestLogTotals
	err := r.seq.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_request_logs`,
	).Scan(&t.Requests, &t.InputTokens, &t.OutputTokens)
	if err != nil {
		return RequestLogTotals{}, fmt.Errorf("aggregate request log: %w", err)
	}
	return t, nil
}

func (r *requestLogRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.seq.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0), COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		 FROM llm_request_logs
		 GROUP BY purpose
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *requestLogRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.seq.db.QueryContext(ctx,
		`SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_request_logs
		 GROUP BY model
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
