// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/padhai/ent/doubt"
	"github.com/abhisek/padhai/ent/predicate"
)

// DoubtUpdate is the builder for updating Doubt entities.
type DoubtUpdate struct {
	config
	hooks    []Hook
	mutation *DoubtMutation
}

// Where appends a list predicates to the DoubtUpdate builder.
func (_u *DoubtUpdate) Where(ps ...predicate.Doubt) *DoubtUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *DoubtUpdate) SetQuestion(v string) *DoubtUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *DoubtUpdate) SetNillableQuestion(v *string) *DoubtUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DoubtUpdate) SetExtractedText(v string) *DoubtUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DoubtUpdate) SetNillableExtractedText(v *string) *DoubtUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DoubtUpdate) SetSubject(v string) *DoubtUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DoubtUpdate) SetNillableSubject(v *string) *DoubtUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DoubtUpdate) SetLanguage(v string) *DoubtUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DoubtUpdate) SetNillableLanguage(v *string) *DoubtUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DoubtUpdate) SetSolution(v map[string]interface{}) *DoubtUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *DoubtUpdate) SetModel(v string) *DoubtUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DoubtUpdate) SetNillableModel(v *string) *DoubtUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the DoubtMutation object of the builder.
func (_u *DoubtUpdate) Mutation() *DoubtMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoubtUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoubtUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoubtUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoubtUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoubtUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := doubt.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Doubt.question": %w`, err)}
		}
	}
	return nil
}

func (_u *DoubtUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doubt.Table, doubt.Columns, sqlgraph.NewFieldSpec(doubt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(doubt.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(doubt.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(doubt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(doubt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(doubt.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(doubt.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doubt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoubtUpdateOne is the builder for updating a single Doubt entity.
type DoubtUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoubtMutation
}

// SetQuestion sets the "question" field.
func (_u *DoubtUpdateOne) SetQuestion(v string) *DoubtUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *DoubtUpdateOne) SetNillableQuestion(v *string) *DoubtUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DoubtUpdateOne) SetExtractedText(v string) *DoubtUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DoubtUpdateOne) SetNillableExtractedText(v *string) *DoubtUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DoubtUpdateOne) SetSubject(v string) *DoubtUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DoubtUpdateOne) SetNillableSubject(v *string) *DoubtUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DoubtUpdateOne) SetLanguage(v string) *DoubtUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DoubtUpdateOne) SetNillableLanguage(v *string) *DoubtUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DoubtUpdateOne) SetSolution(v map[string]interface{}) *DoubtUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *DoubtUpdateOne) SetModel(v string) *DoubtUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DoubtUpdateOne) SetNillableModel(v *string) *DoubtUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the DoubtMutation object of the builder.
func (_u *DoubtUpdateOne) Mutation() *DoubtMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoubtUpdate builder.
func (_u *DoubtUpdateOne) Where(ps ...predicate.Doubt) *DoubtUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoubtUpdateOne) Select(field string, fields ...string) *DoubtUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doubt entity.
func (_u *DoubtUpdateOne) Save(ctx context.Context) (*Doubt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoubtUpdateOne) SaveX(ctx context.Context) *Doubt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoubtUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoubtUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoubtUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := doubt.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Doubt.question": %w`, err)}
		}
	}
	return nil
}

func (_u *DoubtUpdateOne) sqlSave(ctx context.Context) (_node *Doubt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doubt.Table, doubt.Columns, sqlgraph.NewFieldSpec(doubt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Doubt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doubt.FieldID)
		for _, f := range fields {
			if !doubt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != doubt.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(doubt.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(doubt.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(doubt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(doubt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(doubt.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(doubt.FieldModel, field.TypeString, value)
	}
	_node = &Doubt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doubt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
