// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/padhai/ent/predicate"
	"github.com/abhisek/padhai/ent/progressmark"
)

// ProgressMarkUpdate is the builder for updating ProgressMark entities.
type ProgressMarkUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMarkMutation
}

// Where appends a list predicates to the ProgressMarkUpdate builder.
func (_u *ProgressMarkUpdate) Where(ps ...predicate.ProgressMark) *ProgressMarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarkedAt sets the "marked_at" field.
func (_u *ProgressMarkUpdate) SetMarkedAt(v time.Time) *ProgressMarkUpdate {
	_u.mutation.SetMarkedAt(v)
	return _u
}

// SetNillableMarkedAt sets the "marked_at" field if the given value is not nil.
func (_u *ProgressMarkUpdate) SetNillableMarkedAt(v *time.Time) *ProgressMarkUpdate {
	if v != nil {
		_u.SetMarkedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressMarkMutation object of the builder.
func (_u *ProgressMarkUpdate) Mutation() *ProgressMarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressMarkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressMarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressMarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressMarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressMarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressmark.Table, progressmark.Columns, sqlgraph.NewFieldSpec(progressmark.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MarkedAt(); ok {
		_spec.SetField(progressmark.FieldMarkedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressMarkUpdateOne is the builder for updating a single ProgressMark entity.
type ProgressMarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMarkMutation
}

// SetMarkedAt sets the "marked_at" field.
func (_u *ProgressMarkUpdateOne) SetMarkedAt(v time.Time) *ProgressMarkUpdateOne {
	_u.mutation.SetMarkedAt(v)
	return _u
}

// SetNillableMarkedAt sets the "marked_at" field if the given value is not nil.
func (_u *ProgressMarkUpdateOne) SetNillableMarkedAt(v *time.Time) *ProgressMarkUpdateOne {
	if v != nil {
		_u.SetMarkedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressMarkMutation object of the builder.
func (_u *ProgressMarkUpdateOne) Mutation() *ProgressMarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressMarkUpdate builder.
func (_u *ProgressMarkUpdateOne) Where(ps ...predicate.ProgressMark) *ProgressMarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressMarkUpdateOne) Select(field string, fields ...string) *ProgressMarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressMark entity.
func (_u *ProgressMarkUpdateOne) Save(ctx context.Context) (*ProgressMark, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressMarkUpdateOne) SaveX(ctx context.Context) *ProgressMark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressMarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressMarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressMarkUpdateOne) sqlSave(ctx context.Context) (_node *ProgressMark, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressmark.Table, progressmark.Columns, sqlgraph.NewFieldSpec(progressmark.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressMark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressmark.FieldID)
		for _, f := range fields {
			if !progressmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressmark.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MarkedAt(); ok {
		_spec.SetField(progressmark.FieldMarkedAt, field.TypeTime, value)
	}
	_node = &ProgressMark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
