// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/padhai/ent/doubt"
)

// DoubtCreate is the builder for creating a Doubt entity.
type DoubtCreate struct {
	config
	mutation *DoubtMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DoubtCreate) SetSequence(v int64) *DoubtCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DoubtCreate) SetTimestamp(v time.Time) *DoubtCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DoubtCreate) SetNillableTimestamp(v *time.Time) *DoubtCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *DoubtCreate) SetQuestion(v string) *DoubtCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *DoubtCreate) SetExtractedText(v string) *DoubtCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *DoubtCreate) SetNillableExtractedText(v *string) *DoubtCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *DoubtCreate) SetSubject(v string) *DoubtCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *DoubtCreate) SetNillableSubject(v *string) *DoubtCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DoubtCreate) SetLanguage(v string) *DoubtCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *DoubtCreate) SetNillableLanguage(v *string) *DoubtCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetSolution sets the "solution" field.
func (_c *DoubtCreate) SetSolution(v map[string]interface{}) *DoubtCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *DoubtCreate) SetModel(v string) *DoubtCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *DoubtCreate) SetNillableModel(v *string) *DoubtCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// Mutation returns the DoubtMutation object of the builder.
func (_c *DoubtCreate) Mutation() *DoubtMutation {
	return _c.mutation
}

// Save creates the Doubt in the database.
func (_c *DoubtCreate) Save(ctx context.Context) (*Doubt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoubtCreate) SaveX(ctx context.Context) *Doubt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoubtCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoubtCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoubtCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := doubt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		v := doubt.DefaultExtractedText
		_c.mutation.SetExtractedText(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := doubt.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := doubt.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := doubt.DefaultModel
		_c.mutation.SetModel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoubtCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Doubt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Doubt.timestamp"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Doubt.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := doubt.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Doubt.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		return &ValidationError{Name: "extracted_text", err: errors.New(`ent: missing required field "Doubt.extracted_text"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Doubt.subject"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Doubt.language"`)}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "Doubt.solution"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Doubt.model"`)}
	}
	return nil
}

func (_c *DoubtCreate) sqlSave(ctx context.Context) (*Doubt, error) {
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

func (_c *DoubtCreate) createSpec() (*Doubt, *sqlgraph.CreateSpec) {
	var (
		_node = &Doubt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doubt.Table, sqlgraph.NewFieldSpec(doubt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(doubt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(doubt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(doubt.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(doubt.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(doubt.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(doubt.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(doubt.FieldSolution, field.TypeJSON, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(doubt.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	return _node, _spec
}

// DoubtCreateBulk is the builder for creating many Doubt entities in bulk.
type DoubtCreateBulk struct {
	config
	err      error
	builders []*DoubtCreate
}

// Save creates the Doubt entities in the database.
func (_c *DoubtCreateBulk) Save(ctx context.Context) ([]*Doubt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doubt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoubtMutation)
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
func (_c *DoubtCreateBulk) SaveX(ctx context.Context) []*Doubt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoubtCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoubtCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
