// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/padhai/ent/progressmark"
)

// ProgressMarkCreate is the builder for creating a ProgressMark entity.
type ProgressMarkCreate struct {
	config
	mutation *ProgressMarkMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *ProgressMarkCreate) SetPlanID(v string) *ProgressMarkCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetTaskKey sets the "task_key" field.
func (_c *ProgressMarkCreate) SetTaskKey(v string) *ProgressMarkCreate {
	_c.mutation.SetTaskKey(v)
	return _c
}

// SetMarkedAt sets the "marked_at" field.
func (_c *ProgressMarkCreate) SetMarkedAt(v time.Time) *ProgressMarkCreate {
	_c.mutation.SetMarkedAt(v)
	return _c
}

// SetNillableMarkedAt sets the "marked_at" field if the given value is not nil.
func (_c *ProgressMarkCreate) SetNillableMarkedAt(v *time.Time) *ProgressMarkCreate {
	if v != nil {
		_c.SetMarkedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMarkMutation object of the builder.
func (_c *ProgressMarkCreate) Mutation() *ProgressMarkMutation {
	return _c.mutation
}

// Save creates the ProgressMark in the database.
func (_c *ProgressMarkCreate) Save(ctx context.Context) (*ProgressMark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressMarkCreate) SaveX(ctx context.Context) *ProgressMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressMarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressMarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressMarkCreate) defaults() {
	if _, ok := _c.mutation.MarkedAt(); !ok {
		v := progressmark.DefaultMarkedAt()
		_c.mutation.SetMarkedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressMarkCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "ProgressMark.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := progressmark.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ProgressMark.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskKey(); !ok {
		return &ValidationError{Name: "task_key", err: errors.New(`ent: missing required field "ProgressMark.task_key"`)}
	}
	if v, ok := _c.mutation.TaskKey(); ok {
		if err := progressmark.TaskKeyValidator(v); err != nil {
			return &ValidationError{Name: "task_key", err: fmt.Errorf(`ent: validator failed for field "ProgressMark.task_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarkedAt(); !ok {
		return &ValidationError{Name: "marked_at", err: errors.New(`ent: missing required field "ProgressMark.marked_at"`)}
	}
	return nil
}

func (_c *ProgressMarkCreate) sqlSave(ctx context.Context) (*ProgressMark, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressMarkCreate) createSpec() (*ProgressMark, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressMark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressmark.Table, sqlgraph.NewFieldSpec(progressmark.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(progressmark.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.TaskKey(); ok {
		_spec.SetField(progressmark.FieldTaskKey, field.TypeString, value)
		_node.TaskKey = value
	}
	if value, ok := _c.mutation.MarkedAt(); ok {
		_spec.SetField(progressmark.FieldMarkedAt, field.TypeTime, value)
		_node.MarkedAt = value
	}
	return _node, _spec
}

// ProgressMarkCreateBulk is the builder for creating many ProgressMark entities in bulk.
type ProgressMarkCreateBulk struct {
	config
	err      error
	builders []*ProgressMarkCreate
}

// Save creates the ProgressMark entities in the database.
func (_c *ProgressMarkCreateBulk) Save(ctx context.Context) ([]*ProgressMark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressMark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMarkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressMarkCreateBulk) SaveX(ctx context.Context) []*ProgressMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressMarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressMarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
