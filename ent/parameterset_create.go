// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/padhai/ent/parameterset"
)

// ParameterSetCreate is the builder for creating a ParameterSet entity.
type ParameterSetCreate struct {
	config
	mutation *ParameterSetMutation
	hooks    []Hook
}

// SetParameters sets the "parameters" field.
func (_c *ParameterSetCreate) SetParameters(v map[string]interface{}) *ParameterSetCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ParameterSetCreate) SetUpdatedAt(v time.Time) *ParameterSetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ParameterSetCreate) SetNillableUpdatedAt(v *time.Time) *ParameterSetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ParameterSetMutation object of the builder.
func (_c *ParameterSetCreate) Mutation() *ParameterSetMutation {
	return _c.mutation
}

// Save creates the ParameterSet in the database.
func (_c *ParameterSetCreate) Save(ctx context.Context) (*ParameterSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParameterSetCreate) SaveX(ctx context.Context) *ParameterSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParameterSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParameterSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParameterSetCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := parameterset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParameterSetCreate) check() error {
	if _, ok := _c.mutation.Parameters(); !ok {
		return &ValidationError{Name: "parameters", err: errors.New(`ent: missing required field "ParameterSet.parameters"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ParameterSet.updated_at"`)}
	}
	return nil
}

func (_c *ParameterSetCreate) sqlSave(ctx context.Context) (*ParameterSet, error) {
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

func (_c *ParameterSetCreate) createSpec() (*ParameterSet, *sqlgraph.CreateSpec) {
	var (
		_node = &ParameterSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parameterset.Table, sqlgraph.NewFieldSpec(parameterset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(parameterset.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(parameterset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ParameterSetCreateBulk is the builder for creating many ParameterSet entities in bulk.
type ParameterSetCreateBulk struct {
	config
	err      error
	builders []*ParameterSetCreate
}

// Save creates the ParameterSet entities in the database.
func (_c *ParameterSetCreateBulk) Save(ctx context.Context) ([]*ParameterSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParameterSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParameterSetMutation)
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
func (_c *ParameterSetCreateBulk) SaveX(ctx context.Context) []*ParameterSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParameterSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParameterSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
