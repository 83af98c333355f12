// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/Alijeyrad/crm_backend/internal/repo/tag"
	"github.com/Alijeyrad/crm_backend/internal/repo/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupportCaseCreate is the builder for creating a SupportCase entity.
type SupportCaseCreate struct {
	config
	mutation *SupportCaseMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *SupportCaseCreate) SetOrganizationID(v uuid.UUID) *SupportCaseCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupportCaseCreate) SetCreatedAt(v time.Time) *SupportCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableCreatedAt(v *time.Time) *SupportCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupportCaseCreate) SetUpdatedAt(v time.Time) *SupportCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableUpdatedAt(v *time.Time) *SupportCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SupportCaseCreate) SetName(v string) *SupportCaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SupportCaseCreate) SetDescription(v string) *SupportCaseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableDescription(v *string) *SupportCaseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SupportCaseCreate) SetStatus(v supportcase.Status) *SupportCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableStatus(v *supportcase.Status) *SupportCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SupportCaseCreate) SetPriority(v supportcase.Priority) *SupportCaseCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillablePriority(v *supportcase.Priority) *SupportCaseCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCaseType sets the "case_type" field.
func (_c *SupportCaseCreate) SetCaseType(v supportcase.CaseType) *SupportCaseCreate {
	_c.mutation.SetCaseType(v)
	return _c
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableCaseType(v *supportcase.CaseType) *SupportCaseCreate {
	if v != nil {
		_c.SetCaseType(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *SupportCaseCreate) SetAccountID(v uuid.UUID) *SupportCaseCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableAccountID(v *uuid.UUID) *SupportCaseCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *SupportCaseCreate) SetStageID(v uuid.UUID) *SupportCaseCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableStageID(v *uuid.UUID) *SupportCaseCreate {
	if v != nil {
		_c.SetStageID(*v)
	}
	return _c
}

// SetKanbanOrder sets the "kanban_order" field.
func (_c *SupportCaseCreate) SetKanbanOrder(v decimal.Decimal) *SupportCaseCreate {
	_c.mutation.SetKanbanOrder(v)
	return _c
}

// SetNillableKanbanOrder sets the "kanban_order" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableKanbanOrder(v *decimal.Decimal) *SupportCaseCreate {
	if v != nil {
		_c.SetKanbanOrder(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SupportCaseCreate) SetCreatedBy(v uuid.UUID) *SupportCaseCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SupportCaseCreate) SetID(v uuid.UUID) *SupportCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableID(v *uuid.UUID) *SupportCaseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStage sets the "stage" edge to the CaseStage entity.
func (_c *SupportCaseCreate) SetStage(v *CaseStage) *SupportCaseCreate {
	return _c.SetStageID(v.ID)
}

// AddAssigneeIDs adds the "assignees" edge to the User entity by IDs.
func (_c *SupportCaseCreate) AddAssigneeIDs(ids ...uuid.UUID) *SupportCaseCreate {
	_c.mutation.AddAssigneeIDs(ids...)
	return _c
}

// AddAssignees adds the "assignees" edges to the User entity.
func (_c *SupportCaseCreate) AddAssignees(v ...*User) *SupportCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssigneeIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *SupportCaseCreate) AddTagIDs(ids ...uuid.UUID) *SupportCaseCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *SupportCaseCreate) AddTags(v ...*Tag) *SupportCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_c *SupportCaseCreate) Mutation() *SupportCaseMutation {
	return _c.mutation
}

// Save creates the SupportCase in the database.
func (_c *SupportCaseCreate) Save(ctx context.Context) (*SupportCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupportCaseCreate) SaveX(ctx context.Context) *SupportCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupportCaseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supportcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supportcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := supportcase.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := supportcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := supportcase.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CaseType(); !ok {
		v := supportcase.DefaultCaseType
		_c.mutation.SetCaseType(v)
	}
	if _, ok := _c.mutation.KanbanOrder(); !ok {
		v := supportcase.DefaultKanbanOrder
		_c.mutation.SetKanbanOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := supportcase.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupportCaseCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`repo: missing required field "SupportCase.organization_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SupportCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SupportCase.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "SupportCase.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := supportcase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SupportCase.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "SupportCase.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "SupportCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "SupportCase.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := supportcase.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "SupportCase.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseType(); !ok {
		return &ValidationError{Name: "case_type", err: errors.New(`repo: missing required field "SupportCase.case_type"`)}
	}
	if v, ok := _c.mutation.CaseType(); ok {
		if err := supportcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`repo: validator failed for field "SupportCase.case_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KanbanOrder(); !ok {
		return &ValidationError{Name: "kanban_order", err: errors.New(`repo: missing required field "SupportCase.kanban_order"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "SupportCase.created_by"`)}
	}
	return nil
}

func (_c *SupportCaseCreate) sqlSave(ctx context.Context) (*SupportCase, error) {
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

func (_c *SupportCaseCreate) createSpec() (*SupportCase, *sqlgraph.CreateSpec) {
	var (
		_node = &SupportCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supportcase.Table, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(supportcase.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supportcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(supportcase.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(supportcase.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(supportcase.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CaseType(); ok {
		_spec.SetField(supportcase.FieldCaseType, field.TypeEnum, value)
		_node.CaseType = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(supportcase.FieldAccountID, field.TypeUUID, value)
		_node.AccountID = &value
	}
	if value, ok := _c.mutation.KanbanOrder(); ok {
		_spec.SetField(supportcase.FieldKanbanOrder, field.TypeOther, value)
		_node.KanbanOrder = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(supportcase.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supportcase.StageTable,
			Columns: []string{supportcase.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casestage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssigneesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   supportcase.AssigneesTable,
			Columns: supportcase.AssigneesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   supportcase.TagsTable,
			Columns: supportcase.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupportCaseCreateBulk is the builder for creating many SupportCase entities in bulk.
type SupportCaseCreateBulk struct {
	config
	err      error
	builders []*SupportCaseCreate
}

// Save creates the SupportCase entities in the database.
func (_c *SupportCaseCreateBulk) Save(ctx context.Context) ([]*SupportCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupportCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupportCaseMutation)
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
func (_c *SupportCaseCreateBulk) SaveX(ctx context.Context) []*SupportCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
