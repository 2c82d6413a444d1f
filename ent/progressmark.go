// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/padhai/ent/progressmark"
)

// ProgressMark is the model entity for the ProgressMark schema.
type ProgressMark struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the owning plan
	PlanID string `json:"plan_id,omitempty"`
	// Completion key: <ISO date>-<subject>-<topic>
	TaskKey string `json:"task_key,omitempty"`
	// When the task was marked complete
	MarkedAt     time.Time `json:"marked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressMark) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressmark.FieldID:
			values[i] = new(sql.NullInt64)
		case progressmark.FieldPlanID, progressmark.FieldTaskKey:
			values[i] = new(sql.NullString)
		case progressmark.FieldMarkedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressMark fields.
func (_m *ProgressMark) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressmark.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressmark.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case progressmark.FieldTaskKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_key", values[i])
			} else if value.Valid {
				_m.TaskKey = value.String
			}
		case progressmark.FieldMarkedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field marked_at", values[i])
			} else if value.Valid {
				_m.MarkedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressMark.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressMark) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressMark.
// Note that you need to call ProgressMark.Unwrap() before calling this method if this ProgressMark
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressMark) Update() *ProgressMarkUpdateOne {
	return NewProgressMarkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressMark entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressMark) Unwrap() *ProgressMark {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressMark is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressMark) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressMark(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("task_key=")
	builder.WriteString(_m.TaskKey)
	builder.WriteString(", ")
	builder.WriteString("marked_at=")
	builder.WriteString(_m.MarkedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressMarks is a parsable slice of ProgressMark.
type ProgressMarks []*ProgressMark
