// Code generated by ent, DO NOT EDIT.

package progressmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressmark type in the database.
	Label = "progress_mark"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldTaskKey holds the string denoting the task_key field in the database.
	FieldTaskKey = "task_key"
	// FieldMarkedAt holds the string denoting the marked_at field in the database.
	FieldMarkedAt = "marked_at"
	// Table holds the table name of the progressmark in the database.
	Table = "progress_marks"
)

// Columns holds all SQL columns for progressmark fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldTaskKey,
	FieldMarkedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// TaskKeyValidator is a validator for the "task_key" field. It is called by the builders before save.
	TaskKeyValidator func(string) error
	// DefaultMarkedAt holds the default value on creation for the "marked_at" field.
	DefaultMarkedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressMark queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByTaskKey orders the results by the task_key field.
func ByTaskKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskKey, opts...).ToFunc()
}

// ByMarkedAt orders the results by the marked_at field.
func ByMarkedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkedAt, opts...).ToFunc()
}
