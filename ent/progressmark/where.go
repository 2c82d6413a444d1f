// Code generated by ent, DO NOT EDIT.

package progressmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/padhai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldPlanID, v))
}

// TaskKey applies equality check predicate on the "task_key" field. It's identical to TaskKeyEQ.
func TaskKey(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldTaskKey, v))
}

// MarkedAt applies equality check predicate on the "marked_at" field. It's identical to MarkedAtEQ.
func MarkedAt(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldMarkedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldContainsFold(FieldPlanID, v))
}

// TaskKeyEQ applies the EQ predicate on the "task_key" field.
func TaskKeyEQ(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldTaskKey, v))
}

// TaskKeyNEQ applies the NEQ predicate on the "task_key" field.
func TaskKeyNEQ(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNEQ(FieldTaskKey, v))
}

// TaskKeyIn applies the In predicate on the "task_key" field.
func TaskKeyIn(vs ...string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldIn(FieldTaskKey, vs...))
}

// TaskKeyNotIn applies the NotIn predicate on the "task_key" field.
func TaskKeyNotIn(vs ...string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNotIn(FieldTaskKey, vs...))
}

// TaskKeyGT applies the GT predicate on the "task_key" field.
func TaskKeyGT(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGT(FieldTaskKey, v))
}

// TaskKeyGTE applies the GTE predicate on the "task_key" field.
func TaskKeyGTE(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGTE(FieldTaskKey, v))
}

// TaskKeyLT applies the LT predicate on the "task_key" field.
func TaskKeyLT(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLT(FieldTaskKey, v))
}

// TaskKeyLTE applies the LTE predicate on the "task_key" field.
func TaskKeyLTE(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLTE(FieldTaskKey, v))
}

// TaskKeyContains applies the Contains predicate on the "task_key" field.
func TaskKeyContains(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldContains(FieldTaskKey, v))
}

// TaskKeyHasPrefix applies the HasPrefix predicate on the "task_key" field.
func TaskKeyHasPrefix(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldHasPrefix(FieldTaskKey, v))
}

// TaskKeyHasSuffix applies the HasSuffix predicate on the "task_key" field.
func TaskKeyHasSuffix(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldHasSuffix(FieldTaskKey, v))
}

// TaskKeyEqualFold applies the EqualFold predicate on the "task_key" field.
func TaskKeyEqualFold(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEqualFold(FieldTaskKey, v))
}

// TaskKeyContainsFold applies the ContainsFold predicate on the "task_key" field.
func TaskKeyContainsFold(v string) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldContainsFold(FieldTaskKey, v))
}

// MarkedAtEQ applies the EQ predicate on the "marked_at" field.
func MarkedAtEQ(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldEQ(FieldMarkedAt, v))
}

// MarkedAtNEQ applies the NEQ predicate on the "marked_at" field.
func MarkedAtNEQ(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNEQ(FieldMarkedAt, v))
}

// MarkedAtIn applies the In predicate on the "marked_at" field.
func MarkedAtIn(vs ...time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldIn(FieldMarkedAt, vs...))
}

// MarkedAtNotIn applies the NotIn predicate on the "marked_at" field.
func MarkedAtNotIn(vs ...time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldNotIn(FieldMarkedAt, vs...))
}

// MarkedAtGT applies the GT predicate on the "marked_at" field.
func MarkedAtGT(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGT(FieldMarkedAt, v))
}

// MarkedAtGTE applies the GTE predicate on the "marked_at" field.
func MarkedAtGTE(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldGTE(FieldMarkedAt, v))
}

// MarkedAtLT applies the LT predicate on the "marked_at" field.
func MarkedAtLT(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLT(FieldMarkedAt, v))
}

// MarkedAtLTE applies the LTE predicate on the "marked_at" field.
func MarkedAtLTE(v time.Time) predicate.ProgressMark {
	return predicate.ProgressMark(sql.FieldLTE(FieldMarkedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressMark) predicate.ProgressMark {
	return predicate.ProgressMark(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressMark) predicate.ProgressMark {
	return predicate.ProgressMark(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressMark) predicate.ProgressMark {
	return predicate.ProgressMark(sql.NotPredicates(p))
}
