package store

import (
	"context"
	"fmt"

	"github.com/abhisek/padhai/ent"
	"github.com/abhisek/padhai/ent/doubt"
)

// doubtRepo implements DoubtRepo backed by ent and the global sequence counter.
type doubtRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *doubtRepo) Append(ctx context.Context, rec DoubtRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Doubt.Create().
		SetSequence(seqNum).
		SetQuestion(rec.Question).
		SetExtractedText(rec.ExtractedText).
		SetSubject(rec.Subject).
		SetLanguage(rec.Language).
		SetSolution(rec.Solution).
		SetModel(rec.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save doubt: %w", err)
	}
	return nil
}

func (r *doubtRepo) Recent(ctx context.Context, limit int) ([]DoubtRecord, error) {
	q := r.client.Doubt.Query().
		Order(ent.Desc(doubt.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query doubts: %w", err)
	}

	recs := make([]DoubtRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, DoubtRecord{
			Sequence:      row.Sequence,
			Timestamp:     row.Timestamp,
			Question:      row.Question,
			ExtractedText: row.ExtractedText,
			Subject:       row.Subject,
			Language:      row.Language,
			Solution:      row.Solution,
			Model:         row.Model,
		})
	}
	return recs, nil
}
