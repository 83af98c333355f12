// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/google/uuid"
)

// CaseStageCreate is the builder for creating a CaseStage entity.
type CaseStageCreate struct {
	config
	mutation *CaseStageMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CaseStageCreate) SetOrganizationID(v uuid.UUID) *CaseStageCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseStageCreate) SetCreatedAt(v time.Time) *CaseStageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableCreatedAt(v *time.Time) *CaseStageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseStageCreate) SetUpdatedAt(v time.Time) *CaseStageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableUpdatedAt(v *time.Time) *CaseStageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *CaseStageCreate) SetPipelineID(v uuid.UUID) *CaseStageCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CaseStageCreate) SetName(v string) *CaseStageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CaseStageCreate) SetPosition(v int) *CaseStageCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillablePosition(v *int) *CaseStageCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *CaseStageCreate) SetColor(v string) *CaseStageCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableColor(v *string) *CaseStageCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetStageType sets the "stage_type" field.
func (_c *CaseStageCreate) SetStageType(v casestage.StageType) *CaseStageCreate {
	_c.mutation.SetStageType(v)
	return _c
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableStageType(v *casestage.StageType) *CaseStageCreate {
	if v != nil {
		_c.SetStageType(*v)
	}
	return _c
}

// SetMapsToStatus sets the "maps_to_status" field.
func (_c *CaseStageCreate) SetMapsToStatus(v string) *CaseStageCreate {
	_c.mutation.SetMapsToStatus(v)
	return _c
}

// SetNillableMapsToStatus sets the "maps_to_status" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableMapsToStatus(v *string) *CaseStageCreate {
	if v != nil {
		_c.SetMapsToStatus(*v)
	}
	return _c
}

// SetWipLimit sets the "wip_limit" field.
func (_c *CaseStageCreate) SetWipLimit(v int) *CaseStageCreate {
	_c.mutation.SetWipLimit(v)
	return _c
}

// SetNillableWipLimit sets the "wip_limit" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableWipLimit(v *int) *CaseStageCreate {
	if v != nil {
		_c.SetWipLimit(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CaseStageCreate) SetCreatedBy(v uuid.UUID) *CaseStageCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaseStageCreate) SetID(v uuid.UUID) *CaseStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaseStageCreate) SetNillableID(v *uuid.UUID) *CaseStageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPipeline sets the "pipeline" edge to the CasePipeline entity.
func (_c *CaseStageCreate) SetPipeline(v *CasePipeline) *CaseStageCreate {
	return _c.SetPipelineID(v.ID)
}

// AddCaseIDs adds the "cases" edge to the SupportCase entity by IDs.
func (_c *CaseStageCreate) AddCaseIDs(ids ...uuid.UUID) *CaseStageCreate {
	_c.mutation.AddCaseIDs(ids...)
	return _c
}

// AddCases adds the "cases" edges to the SupportCase entity.
func (_c *CaseStageCreate) AddCases(v ...*SupportCase) *CaseStageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCaseIDs(ids...)
}

// Mutation returns the CaseStageMutation object of the builder.
func (_c *CaseStageCreate) Mutation() *CaseStageMutation {
	return _c.mutation
}

// Save creates the CaseStage in the database.
func (_c *CaseStageCreate) Save(ctx context.Context) (*CaseStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseStageCreate) SaveX(ctx context.Context) *CaseStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseStageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := casestage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := casestage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := casestage.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Color(); !ok {
		v := casestage.DefaultColor
		_c.mutation.SetColor(v)
	}
	if _, ok := _c.mutation.StageType(); !ok {
		v := casestage.DefaultStageType
		_c.mutation.SetStageType(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := casestage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseStageCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`repo: missing required field "CaseStage.organization_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CaseStage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CaseStage.updated_at"`)}
	}
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`repo: missing required field "CaseStage.pipeline_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "CaseStage.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := casestage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CaseStage.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "CaseStage.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := casestage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "CaseStage.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`repo: missing required field "CaseStage.color"`)}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := casestage.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "CaseStage.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageType(); !ok {
		return &ValidationError{Name: "stage_type", err: errors.New(`repo: missing required field "CaseStage.stage_type"`)}
	}
	if v, ok := _c.mutation.StageType(); ok {
		if err := casestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`repo: validator failed for field "CaseStage.stage_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MapsToStatus(); ok {
		if err := casestage.MapsToStatusValidator(v); err != nil {
			return &ValidationError{Name: "maps_to_status", err: fmt.Errorf(`repo: validator failed for field "CaseStage.maps_to_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WipLimit(); ok {
		if err := casestage.WipLimitValidator(v); err != nil {
			return &ValidationError{Name: "wip_limit", err: fmt.Errorf(`repo: validator failed for field "CaseStage.wip_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "CaseStage.created_by"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`repo: missing required edge "CaseStage.pipeline"`)}
	}
	return nil
}

func (_c *CaseStageCreate) sqlSave(ctx context.Context) (*CaseStage, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseStageCreate) createSpec() (*CaseStage, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(casestage.Table, sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(casestage.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(casestage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(casestage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(casestage.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(casestage.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(casestage.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.StageType(); ok {
		_spec.SetField(casestage.FieldStageType, field.TypeEnum, value)
		_node.StageType = value
	}
	if value, ok := _c.mutation.MapsToStatus(); ok {
		_spec.SetField(casestage.FieldMapsToStatus, field.TypeString, value)
		_node.MapsToStatus = &value
	}
	if value, ok := _c.mutation.WipLimit(); ok {
		_spec.SetField(casestage.FieldWipLimit, field.TypeInt, value)
		_node.WipLimit = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(casestage.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
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
		_node.PipelineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaseStageCreateBulk is the builder for creating many CaseStage entities in bulk.
type CaseStageCreateBulk struct {
	config
	err      error
	builders []*CaseStageCreate
}

// Save creates the CaseStage entities in the database.
func (_c *CaseStageCreateBulk) Save(ctx context.Context) ([]*CaseStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseStageMutation)
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
func (_c *CaseStageCreateBulk) SaveX(ctx context.Context) []*CaseStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
