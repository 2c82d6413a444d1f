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
	"github.com/abhisek/padhai/ent/parameterset"
	"github.com/abhisek/padhai/ent/predicate"
)

// ParameterSetUpdate is the builder for updating ParameterSet entities.
type ParameterSetUpdate struct {
	config
	hooks    []Hook
	mutation *ParameterSetMutation
}

// Where appends a list predicates to the ParameterSetUpdate builder.
func (_u *ParameterSetUpdate) Where(ps ...predicate.ParameterSet) *ParameterSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *ParameterSetUpdate) SetParameters(v map[string]interface{}) *ParameterSetUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParameterSetUpdate) SetUpdatedAt(v time.Time) *ParameterSetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParameterSetMutation object of the builder.
func (_u *ParameterSetUpdate) Mutation() *ParameterSetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParameterSetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParameterSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParameterSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParameterSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParameterSetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parameterset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ParameterSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(parameterset.Table, parameterset.Columns, sqlgraph.NewFieldSpec(parameterset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(parameterset.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(parameterset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameterset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParameterSetUpdateOne is the builder for updating a single ParameterSet entity.
type ParameterSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParameterSetMutation
}

// SetParameters sets the "parameters" field.
func (_u *ParameterSetUpdateOne) SetParameters(v map[string]interface{}) *ParameterSetUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParameterSetUpdateOne) SetUpdatedAt(v time.Time) *ParameterSetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParameterSetMutation object of the builder.
func (_u *ParameterSetUpdateOne) Mutation() *ParameterSetMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParameterSetUpdate builder.
func (_u *ParameterSetUpdateOne) Where(ps ...predicate.ParameterSet) *ParameterSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParameterSetUpdateOne) Select(field string, fields ...string) *ParameterSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParameterSet entity.
func (_u *ParameterSetUpdateOne) Save(ctx context.Context) (*ParameterSet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParameterSetUpdateOne) SaveX(ctx context.Context) *ParameterSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParameterSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParameterSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParameterSetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parameterset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ParameterSetUpdateOne) sqlSave(ctx context.Context) (_node *ParameterSet, err error) {
	_spec := sqlgraph.NewUpdateSpec(parameterset.Table, parameterset.Columns, sqlgraph.NewFieldSpec(parameterset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParameterSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parameterset.FieldID)
		for _, f := range fields {
			if !parameterset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parameterset.FieldID {
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
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(parameterset.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(parameterset.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ParameterSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameterset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
