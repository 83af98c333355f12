// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CasePipelineUpdate is the builder for updating CasePipeline entities.
type CasePipelineUpdate struct {
	config
	hooks    []Hook
	mutation *CasePipelineMutation
}

// Where appends a list predicates to the CasePipelineUpdate builder.
func (_u *CasePipelineUpdate) Where(ps ...predicate.CasePipeline) *CasePipelineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CasePipelineUpdate) SetUpdatedAt(v time.Time) *CasePipelineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CasePipelineUpdate) SetName(v string) *CasePipelineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CasePipelineUpdate) SetNillableName(v *string) *CasePipelineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CasePipelineUpdate) SetIsActive(v bool) *CasePipelineUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CasePipelineUpdate) SetNillableIsActive(v *bool) *CasePipelineUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CasePipelineUpdate) SetCreatedBy(v uuid.UUID) *CasePipelineUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CasePipelineUpdate) SetNillableCreatedBy(v *uuid.UUID) *CasePipelineUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the CaseStage entity by IDs.
func (_u *CasePipelineUpdate) AddStageIDs(ids ...uuid.UUID) *CasePipelineUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CaseStage entity.
func (_u *CasePipelineUpdate) AddStages(v ...*CaseStage) *CasePipelineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the CasePipelineMutation object of the builder.
func (_u *CasePipelineUpdate) Mutation() *CasePipelineMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CaseStage entity.
func (_u *CasePipelineUpdate) ClearStages() *CasePipelineUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CaseStage entities by IDs.
func (_u *CasePipelineUpdate) RemoveStageIDs(ids ...uuid.UUID) *CasePipelineUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CaseStage entities.
func (_u *CasePipelineUpdate) RemoveStages(v ...*CaseStage) *CasePipelineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CasePipelineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CasePipelineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CasePipelineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CasePipelineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CasePipelineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casepipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CasePipelineUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := casepipeline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CasePipeline.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CasePipelineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casepipeline.Table, casepipeline.Columns, sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casepipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casepipeline.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(casepipeline.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(casepipeline.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casepipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CasePipelineUpdateOne is the builder for updating a single CasePipeline entity.
type CasePipelineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CasePipelineMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CasePipelineUpdateOne) SetUpdatedAt(v time.Time) *CasePipelineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CasePipelineUpdateOne) SetName(v string) *CasePipelineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CasePipelineUpdateOne) SetNillableName(v *string) *CasePipelineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CasePipelineUpdateOne) SetIsActive(v bool) *CasePipelineUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CasePipelineUpdateOne) SetNillableIsActive(v *bool) *CasePipelineUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CasePipelineUpdateOne) SetCreatedBy(v uuid.UUID) *CasePipelineUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CasePipelineUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *CasePipelineUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the CaseStage entity by IDs.
func (_u *CasePipelineUpdateOne) AddStageIDs(ids ...uuid.UUID) *CasePipelineUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CaseStage entity.
func (_u *CasePipelineUpdateOne) AddStages(v ...*CaseStage) *CasePipelineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the CasePipelineMutation object of the builder.
func (_u *CasePipelineUpdateOne) Mutation() *CasePipelineMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CaseStage entity.
func (_u *CasePipelineUpdateOne) ClearStages() *CasePipelineUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CaseStage entities by IDs.
func (_u *CasePipelineUpdateOne) RemoveStageIDs(ids ...uuid.UUID) *CasePipelineUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CaseStage entities.
func (_u *CasePipelineUpdateOne) RemoveStages(v ...*CaseStage) *CasePipelineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Where appends a list predicates to the CasePipelineUpdate builder.
func (_u *CasePipelineUpdateOne) Where(ps ...predicate.CasePipeline) *CasePipelineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CasePipelineUpdateOne) Select(field string, fields ...string) *CasePipelineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CasePipeline entity.
func (_u *CasePipelineUpdateOne) Save(ctx context.Context) (*CasePipeline, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CasePipelineUpdateOne) SaveX(ctx context.Context) *CasePipeline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CasePipelineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CasePipelineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CasePipelineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casepipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CasePipelineUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := casepipeline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CasePipeline.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CasePipelineUpdateOne) sqlSave(ctx context.Context) (_node *CasePipeline, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casepipeline.Table, casepipeline.Columns, sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CasePipeline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casepipeline.FieldID)
		for _, f := range fields {
			if !casepipeline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != casepipeline.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casepipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casepipeline.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(casepipeline.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(casepipeline.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casepipeline.StagesTable,
			Columns: []string{casepipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CasePipeline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casepipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
