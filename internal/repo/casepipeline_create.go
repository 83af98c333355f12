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
	"github.com/google/uuid"
)

// CasePipelineCreate is the builder for creating a CasePipeline entity.
type CasePipelineCreate struct {
	config
	mutation *CasePipelineMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CasePipelineCreate) SetOrganizationID(v uuid.UUID) *CasePipelineCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CasePipelineCreate) SetCreatedAt(v time.Time) *CasePipelineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CasePipelineCreate) SetNillableCreatedAt(v *time.Time) *CasePipelineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CasePipelineCreate) SetUpdatedAt(v time.Time) *CasePipelineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CasePipelineCreate) SetNillableUpdatedAt(v *time.Time) *CasePipelineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CasePipelineCreate) SetName(v string) *CasePipelineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *CasePipelineCreate) SetIsActive(v bool) *CasePipelineCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *CasePipelineCreate) SetNillableIsActive(v *bool) *CasePipelineCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CasePipelineCreate) SetCreatedBy(v uuid.UUID) *CasePipelineCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CasePipelineCreate) SetID(v uuid.UUID) *CasePipelineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CasePipelineCreate) SetNillableID(v *uuid.UUID) *CasePipelineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddStageIDs adds the "stages" edge to the CaseStage entity by IDs.
func (_c *CasePipelineCreate) AddStageIDs(ids ...uuid.UUID) *CasePipelineCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the CaseStage entity.
func (_c *CasePipelineCreate) AddStages(v ...*CaseStage) *CasePipelineCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// Mutation returns the CasePipelineMutation object of the builder.
func (_c *CasePipelineCreate) Mutation() *CasePipelineMutation {
	return _c.mutation
}

// Save creates the CasePipeline in the database.
func (_c *CasePipelineCreate) Save(ctx context.Context) (*CasePipeline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CasePipelineCreate) SaveX(ctx context.Context) *CasePipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CasePipelineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CasePipelineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CasePipelineCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := casepipeline.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := casepipeline.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := casepipeline.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := casepipeline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CasePipelineCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`repo: missing required field "CasePipeline.organization_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CasePipeline.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CasePipeline.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "CasePipeline.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := casepipeline.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CasePipeline.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "CasePipeline.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "CasePipeline.created_by"`)}
	}
	return nil
}

func (_c *CasePipelineCreate) sqlSave(ctx context.Context) (*CasePipeline, error) {
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

func (_c *CasePipelineCreate) createSpec() (*CasePipeline, *sqlgraph.CreateSpec) {
	var (
		_node = &CasePipeline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(casepipeline.Table, sqlgraph.NewFieldSpec(casepipeline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(casepipeline.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(casepipeline.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(casepipeline.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(casepipeline.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(casepipeline.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(casepipeline.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CasePipelineCreateBulk is the builder for creating many CasePipeline entities in bulk.
type CasePipelineCreateBulk struct {
	config
	err      error
	builders []*CasePipelineCreate
}

// Save creates the CasePipeline entities in the database.
func (_c *CasePipelineCreateBulk) Save(ctx context.Context) ([]*CasePipeline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CasePipeline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CasePipelineMutation)
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
func (_c *CasePipelineCreateBulk) SaveX(ctx context.Context) []*CasePipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CasePipelineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CasePipelineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
