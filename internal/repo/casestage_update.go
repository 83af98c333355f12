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
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/google/uuid"
)

// CaseStageUpdate is the builder for updating CaseStage entities.
type CaseStageUpdate struct {
	config
	hooks    []Hook
	mutation *CaseStageMutation
}

// Where appends a list predicates to the CaseStageUpdate builder.
func (_u *CaseStageUpdate) Where(ps ...predicate.CaseStage) *CaseStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseStageUpdate) SetUpdatedAt(v time.Time) *CaseStageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *CaseStageUpdate) SetPipelineID(v uuid.UUID) *CaseStageUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillablePipelineID(v *uuid.UUID) *CaseStageUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CaseStageUpdate) SetName(v string) *CaseStageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableName(v *string) *CaseStageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CaseStageUpdate) SetPosition(v int) *CaseStageUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillablePosition(v *int) *CaseStageUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseStageUpdate) AddPosition(v int) *CaseStageUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetColor sets the "color" field.
func (_u *CaseStageUpdate) SetColor(v string) *CaseStageUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableColor(v *string) *CaseStageUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *CaseStageUpdate) SetStageType(v casestage.StageType) *CaseStageUpdate {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableStageType(v *casestage.StageType) *CaseStageUpdate {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetMapsToStatus sets the "maps_to_status" field.
func (_u *CaseStageUpdate) SetMapsToStatus(v string) *CaseStageUpdate {
	_u.mutation.SetMapsToStatus(v)
	return _u
}

// SetNillableMapsToStatus sets the "maps_to_status" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableMapsToStatus(v *string) *CaseStageUpdate {
	if v != nil {
		_u.SetMapsToStatus(*v)
	}
	return _u
}

// ClearMapsToStatus clears the value of the "maps_to_status" field.
func (_u *CaseStageUpdate) ClearMapsToStatus() *CaseStageUpdate {
	_u.mutation.ClearMapsToStatus()
	return _u
}

// SetWipLimit sets the "wip_limit" field.
func (_u *CaseStageUpdate) SetWipLimit(v int) *CaseStageUpdate {
	_u.mutation.ResetWipLimit()
	_u.mutation.SetWipLimit(v)
	return _u
}

// SetNillableWipLimit sets the "wip_limit" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableWipLimit(v *int) *CaseStageUpdate {
	if v != nil {
		_u.SetWipLimit(*v)
	}
	return _u
}

// AddWipLimit adds value to the "wip_limit" field.
func (_u *CaseStageUpdate) AddWipLimit(v int) *CaseStageUpdate {
	_u.mutation.AddWipLimit(v)
	return _u
}

// ClearWipLimit clears the value of the "wip_limit" field.
func (_u *CaseStageUpdate) ClearWipLimit() *CaseStageUpdate {
	_u.mutation.ClearWipLimit()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CaseStageUpdate) SetCreatedBy(v uuid.UUID) *CaseStageUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CaseStageUpdate) SetNillableCreatedBy(v *uuid.UUID) *CaseStageUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetPipeline sets the "pipeline" edge to the CasePipeline entity.
func (_u *CaseStageUpdate) SetPipeline(v *CasePipeline) *CaseStageUpdate {
	return _u.SetPipelineID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the SupportCase entity by IDs.
func (_u *CaseStageUpdate) AddCaseIDs(ids ...uuid.UUID) *CaseStageUpdate {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the SupportCase entity.
func (_u *CaseStageUpdate) AddCases(v ...*SupportCase) *CaseStageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// Mutation returns the CaseStageMutation object of the builder.
func (_u *CaseStageUpdate) Mutation() *CaseStageMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the CasePipeline entity.
func (_u *CaseStageUpdate) ClearPipeline() *CaseStageUpdate {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearCases clears all "cases" edges to the SupportCase entity.
func (_u *CaseStageUpdate) ClearCases() *CaseStageUpdate {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to SupportCase entities by IDs.
func (_u *CaseStageUpdate) RemoveCaseIDs(ids ...uuid.UUID) *CaseStageUpdate {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to SupportCase entities.
func (_u *CaseStageUpdate) RemoveCases(v ...*SupportCase) *CaseStageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseStageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseStageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casestage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseStageUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := casestage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CaseStage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := casestage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "CaseStage.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := casestage.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "CaseStage.color": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageType(); ok {
		if err := casestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`repo: validator failed for field "CaseStage.stage_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MapsToStatus(); ok {
		if err := casestage.MapsToStatusValidator(v); err != nil {
			return &ValidationError{Name: "maps_to_status", err: fmt.Errorf(`repo: validator failed for field "CaseStage.maps_to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipLimit(); ok {
		if err := casestage.WipLimitValidator(v); err != nil {
			return &ValidationError{Name: "wip_limit", err: fmt.Errorf(`repo: validator failed for field "CaseStage.wip_limit": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CaseStage.pipeline"`)
	}
	return nil
}

func (_u *CaseStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casestage.Table, casestage.Columns, sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casestage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casestage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(casestage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(casestage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(casestage.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(casestage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MapsToStatus(); ok {
		_spec.SetField(casestage.FieldMapsToStatus, field.TypeString, value)
	}
	if _u.mutation.MapsToStatusCleared() {
		_spec.ClearField(casestage.FieldMapsToStatus, field.TypeString)
	}
	if value, ok := _u.mutation.WipLimit(); ok {
		_spec.SetField(casestage.FieldWipLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWipLimit(); ok {
		_spec.AddField(casestage.FieldWipLimit, field.TypeInt, value)
	}
	if _u.mutation.WipLimitCleared() {
		_spec.ClearField(casestage.FieldWipLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(casestage.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casestage.PipelineTable,
			Columns: []string{casestage.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casestage.PipelineTable,
			Columns: []string{casestage.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseStageUpdateOne is the builder for updating a single CaseStage entity.
type CaseStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseStageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseStageUpdateOne) SetUpdatedAt(v time.Time) *CaseStageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *CaseStageUpdateOne) SetPipelineID(v uuid.UUID) *CaseStageUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillablePipelineID(v *uuid.UUID) *CaseStageUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CaseStageUpdateOne) SetName(v string) *CaseStageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableName(v *string) *CaseStageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CaseStageUpdateOne) SetPosition(v int) *CaseStageUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillablePosition(v *int) *CaseStageUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseStageUpdateOne) AddPosition(v int) *CaseStageUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetColor sets the "color" field.
func (_u *CaseStageUpdateOne) SetColor(v string) *CaseStageUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableColor(v *string) *CaseStageUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *CaseStageUpdateOne) SetStageType(v casestage.StageType) *CaseStageUpdateOne {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableStageType(v *casestage.StageType) *CaseStageUpdateOne {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetMapsToStatus sets the "maps_to_status" field.
func (_u *CaseStageUpdateOne) SetMapsToStatus(v string) *CaseStageUpdateOne {
	_u.mutation.SetMapsToStatus(v)
	return _u
}

// SetNillableMapsToStatus sets the "maps_to_status" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableMapsToStatus(v *string) *CaseStageUpdateOne {
	if v != nil {
		_u.SetMapsToStatus(*v)
	}
	return _u
}

// ClearMapsToStatus clears the value of the "maps_to_status" field.
func (_u *CaseStageUpdateOne) ClearMapsToStatus() *CaseStageUpdateOne {
	_u.mutation.ClearMapsToStatus()
	return _u
}

// SetWipLimit sets the "wip_limit" field.
func (_u *CaseStageUpdateOne) SetWipLimit(v int) *CaseStageUpdateOne {
	_u.mutation.ResetWipLimit()
	_u.mutation.SetWipLimit(v)
	return _u
}

// SetNillableWipLimit sets the "wip_limit" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableWipLimit(v *int) *CaseStageUpdateOne {
	if v != nil {
		_u.SetWipLimit(*v)
	}
	return _u
}

// AddWipLimit adds value to the "wip_limit" field.
func (_u *CaseStageUpdateOne) AddWipLimit(v int) *CaseStageUpdateOne {
	_u.mutation.AddWipLimit(v)
	return _u
}

// ClearWipLimit clears the value of the "wip_limit" field.
func (_u *CaseStageUpdateOne) ClearWipLimit() *CaseStageUpdateOne {
	_u.mutation.ClearWipLimit()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CaseStageUpdateOne) SetCreatedBy(v uuid.UUID) *CaseStageUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CaseStageUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *CaseStageUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetPipeline sets the "pipeline" edge to the CasePipeline entity.
func (_u *CaseStageUpdateOne) SetPipeline(v *CasePipeline) *CaseStageUpdateOne {
	return _u.SetPipelineID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the SupportCase entity by IDs.
func (_u *CaseStageUpdateOne) AddCaseIDs(ids ...uuid.UUID) *CaseStageUpdateOne {
	_u.mutation.AddCaseIDs(ids...)
	return _u
}

// AddCases adds the "cases" edges to the SupportCase entity.
func (_u *CaseStageUpdateOne) AddCases(v ...*SupportCase) *CaseStageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCaseIDs(ids...)
}

// Mutation returns the CaseStageMutation object of the builder.
func (_u *CaseStageUpdateOne) Mutation() *CaseStageMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the CasePipeline entity.
func (_u *CaseStageUpdateOne) ClearPipeline() *CaseStageUpdateOne {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearCases clears all "cases" edges to the SupportCase entity.
func (_u *CaseStageUpdateOne) ClearCases() *CaseStageUpdateOne {
	_u.mutation.ClearCases()
	return _u
}

// RemoveCaseIDs removes the "cases" edge to SupportCase entities by IDs.
func (_u *CaseStageUpdateOne) RemoveCaseIDs(ids ...uuid.UUID) *CaseStageUpdateOne {
	_u.mutation.RemoveCaseIDs(ids...)
	return _u
}

// RemoveCases removes "cases" edges to SupportCase entities.
func (_u *CaseStageUpdateOne) RemoveCases(v ...*SupportCase) *CaseStageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCaseIDs(ids...)
}

// Where appends a list predicates to the CaseStageUpdate builder.
func (_u *CaseStageUpdateOne) Where(ps ...predicate.CaseStage) *CaseStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseStageUpdateOne) Select(field string, fields ...string) *CaseStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseStage entity.
func (_u *CaseStageUpdateOne) Save(ctx context.Context) (*CaseStage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseStageUpdateOne) SaveX(ctx context.Context) *CaseStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseStageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casestage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseStageUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := casestage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CaseStage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := casestage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "CaseStage.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := casestage.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "CaseStage.color": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageType(); ok {
		if err := casestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`repo: validator failed for field "CaseStage.stage_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MapsToStatus(); ok {
		if err := casestage.MapsToStatusValidator(v); err != nil {
			return &ValidationError{Name: "maps_to_status", err: fmt.Errorf(`repo: validator failed for field "CaseStage.maps_to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipLimit(); ok {
		if err := casestage.WipLimitValidator(v); err != nil {
			return &ValidationError{Name: "wip_limit", err: fmt.Errorf(`repo: validator failed for field "CaseStage.wip_limit": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CaseStage.pipeline"`)
	}
	return nil
}

func (_u *CaseStageUpdateOne) sqlSave(ctx context.Context) (_node *CaseStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casestage.Table, casestage.Columns, sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CaseStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casestage.FieldID)
		for _, f := range fields {
			if !casestage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != casestage.FieldID {
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
		_spec.SetField(casestage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casestage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(casestage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(casestage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(casestage.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(casestage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MapsToStatus(); ok {
		_spec.SetField(casestage.FieldMapsToStatus, field.TypeString, value)
	}
	if _u.mutation.MapsToStatusCleared() {
		_spec.ClearField(casestage.FieldMapsToStatus, field.TypeString)
	}
	if value, ok := _u.mutation.WipLimit(); ok {
		_spec.SetField(casestage.FieldWipLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWipLimit(); ok {
		_spec.AddField(casestage.FieldWipLimit, field.TypeInt, value)
	}
	if _u.mutation.WipLimitCleared() {
		_spec.ClearField(casestage.FieldWipLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(casestage.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casestage.PipelineTable,
			Columns: []string{casestage.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casestage.PipelineTable,
			Columns: []string{casestage.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCasesIDs(); len(nodes) > 0 && !_u.mutation.CasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   casestage.CasesTable,
			Columns: []string{casestage.CasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
