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
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/predicate"
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/Alijeyrad/crm_backend/internal/repo/tag"
	"github.com/Alijeyrad/crm_backend/internal/repo/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupportCaseUpdate is the builder for updating SupportCase entities.
type SupportCaseUpdate struct {
	config
	hooks    []Hook
	mutation *SupportCaseMutation
}

// Where appends a list predicates to the SupportCaseUpdate builder.
func (_u *SupportCaseUpdate) Where(ps ...predicate.SupportCase) *SupportCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportCaseUpdate) SetUpdatedAt(v time.Time) *SupportCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SupportCaseUpdate) SetName(v string) *SupportCaseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableName(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SupportCaseUpdate) SetDescription(v string) *SupportCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableDescription(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupportCaseUpdate) SetStatus(v supportcase.Status) *SupportCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableStatus(v *supportcase.Status) *SupportCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SupportCaseUpdate) SetPriority(v supportcase.Priority) *SupportCaseUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillablePriority(v *supportcase.Priority) *SupportCaseUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *SupportCaseUpdate) SetCaseType(v supportcase.CaseType) *SupportCaseUpdate {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableCaseType(v *supportcase.CaseType) *SupportCaseUpdate {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *SupportCaseUpdate) SetAccountID(v uuid.UUID) *SupportCaseUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableAccountID(v *uuid.UUID) *SupportCaseUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *SupportCaseUpdate) ClearAccountID() *SupportCaseUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *SupportCaseUpdate) SetStageID(v uuid.UUID) *SupportCaseUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableStageID(v *uuid.UUID) *SupportCaseUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// ClearStageID clears the value of the "stage_id" field.
func (_u *SupportCaseUpdate) ClearStageID() *SupportCaseUpdate {
	_u.mutation.ClearStageID()
	return _u
}

// SetKanbanOrder sets the "kanban_order" field.
func (_u *SupportCaseUpdate) SetKanbanOrder(v decimal.Decimal) *SupportCaseUpdate {
	_u.mutation.SetKanbanOrder(v)
	return _u
}

// SetNillableKanbanOrder sets the "kanban_order" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableKanbanOrder(v *decimal.Decimal) *SupportCaseUpdate {
	if v != nil {
		_u.SetKanbanOrder(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SupportCaseUpdate) SetCreatedBy(v uuid.UUID) *SupportCaseUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableCreatedBy(v *uuid.UUID) *SupportCaseUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetStage sets the "stage" edge to the CaseStage entity.
func (_u *SupportCaseUpdate) SetStage(v *CaseStage) *SupportCaseUpdate {
	return _u.SetStageID(v.ID)
}

// AddAssigneeIDs adds the "assignees" edge to the User entity by IDs.
func (_u *SupportCaseUpdate) AddAssigneeIDs(ids ...uuid.UUID) *SupportCaseUpdate {
	_u.mutation.AddAssigneeIDs(ids...)
	return _u
}

// AddAssignees adds the "assignees" edges to the User entity.
func (_u *SupportCaseUpdate) AddAssignees(v ...*User) *SupportCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssigneeIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *SupportCaseUpdate) AddTagIDs(ids ...uuid.UUID) *SupportCaseUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *SupportCaseUpdate) AddTags(v ...*Tag) *SupportCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_u *SupportCaseUpdate) Mutation() *SupportCaseMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the CaseStage entity.
func (_u *SupportCaseUpdate) ClearStage() *SupportCaseUpdate {
	_u.mutation.ClearStage()
	return _u
}

// ClearAssignees clears all "assignees" edges to the User entity.
func (_u *SupportCaseUpdate) ClearAssignees() *SupportCaseUpdate {
	_u.mutation.ClearAssignees()
	return _u
}

// RemoveAssigneeIDs removes the "assignees" edge to User entities by IDs.
func (_u *SupportCaseUpdate) RemoveAssigneeIDs(ids ...uuid.UUID) *SupportCaseUpdate {
	_u.mutation.RemoveAssigneeIDs(ids...)
	return _u
}

// RemoveAssignees removes "assignees" edges to User entities.
func (_u *SupportCaseUpdate) RemoveAssignees(v ...*User) *SupportCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssigneeIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *SupportCaseUpdate) ClearTags() *SupportCaseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *SupportCaseUpdate) RemoveTagIDs(ids ...uuid.UUID) *SupportCaseUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *SupportCaseUpdate) RemoveTags(v ...*Tag) *SupportCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupportCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupportCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportCaseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supportcase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SupportCase.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := supportcase.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "SupportCase.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseType(); ok {
		if err := supportcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`repo: validator failed for field "SupportCase.case_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportcase.Table, supportcase.Columns, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supportcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(supportcase.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(supportcase.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(supportcase.FieldCaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(supportcase.FieldAccountID, field.TypeUUID, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(supportcase.FieldAccountID, field.TypeUUID)
	}
	if value, ok := _u.mutation.KanbanOrder(); ok {
		_spec.SetField(supportcase.FieldKanbanOrder, field.TypeOther, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(supportcase.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssigneesIDs(); len(nodes) > 0 && !_u.mutation.AssigneesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupportCaseUpdateOne is the builder for updating a single SupportCase entity.
type SupportCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupportCaseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportCaseUpdateOne) SetUpdatedAt(v time.Time) *SupportCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SupportCaseUpdateOne) SetName(v string) *SupportCaseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableName(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SupportCaseUpdateOne) SetDescription(v string) *SupportCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableDescription(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupportCaseUpdateOne) SetStatus(v supportcase.Status) *SupportCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableStatus(v *supportcase.Status) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SupportCaseUpdateOne) SetPriority(v supportcase.Priority) *SupportCaseUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillablePriority(v *supportcase.Priority) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *SupportCaseUpdateOne) SetCaseType(v supportcase.CaseType) *SupportCaseUpdateOne {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableCaseType(v *supportcase.CaseType) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *SupportCaseUpdateOne) SetAccountID(v uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableAccountID(v *uuid.UUID) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *SupportCaseUpdateOne) ClearAccountID() *SupportCaseUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *SupportCaseUpdateOne) SetStageID(v uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableStageID(v *uuid.UUID) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// ClearStageID clears the value of the "stage_id" field.
func (_u *SupportCaseUpdateOne) ClearStageID() *SupportCaseUpdateOne {
	_u.mutation.ClearStageID()
	return _u
}

// SetKanbanOrder sets the "kanban_order" field.
func (_u *SupportCaseUpdateOne) SetKanbanOrder(v decimal.Decimal) *SupportCaseUpdateOne {
	_u.mutation.SetKanbanOrder(v)
	return _u
}

// SetNillableKanbanOrder sets the "kanban_order" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableKanbanOrder(v *decimal.Decimal) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetKanbanOrder(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SupportCaseUpdateOne) SetCreatedBy(v uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetStage sets the "stage" edge to the CaseStage entity.
func (_u *SupportCaseUpdateOne) SetStage(v *CaseStage) *SupportCaseUpdateOne {
	return _u.SetStageID(v.ID)
}

// AddAssigneeIDs adds the "assignees" edge to the User entity by IDs.
func (_u *SupportCaseUpdateOne) AddAssigneeIDs(ids ...uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.AddAssigneeIDs(ids...)
	return _u
}

// AddAssignees adds the "assignees" edges to the User entity.
func (_u *SupportCaseUpdateOne) AddAssignees(v ...*User) *SupportCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssigneeIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *SupportCaseUpdateOne) AddTagIDs(ids ...uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *SupportCaseUpdateOne) AddTags(v ...*Tag) *SupportCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_u *SupportCaseUpdateOne) Mutation() *SupportCaseMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the CaseStage entity.
func (_u *SupportCaseUpdateOne) ClearStage() *SupportCaseUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// ClearAssignees clears all "assignees" edges to the User entity.
func (_u *SupportCaseUpdateOne) ClearAssignees() *SupportCaseUpdateOne {
	_u.mutation.ClearAssignees()
	return _u
}

// RemoveAssigneeIDs removes the "assignees" edge to User entities by IDs.
func (_u *SupportCaseUpdateOne) RemoveAssigneeIDs(ids ...uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.RemoveAssigneeIDs(ids...)
	return _u
}

// RemoveAssignees removes "assignees" edges to User entities.
func (_u *SupportCaseUpdateOne) RemoveAssignees(v ...*User) *SupportCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssigneeIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *SupportCaseUpdateOne) ClearTags() *SupportCaseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *SupportCaseUpdateOne) RemoveTagIDs(ids ...uuid.UUID) *SupportCaseUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *SupportCaseUpdateOne) RemoveTags(v ...*Tag) *SupportCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the SupportCaseUpdate builder.
func (_u *SupportCaseUpdateOne) Where(ps ...predicate.SupportCase) *SupportCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupportCaseUpdateOne) Select(field string, fields ...string) *SupportCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupportCase entity.
func (_u *SupportCaseUpdateOne) Save(ctx context.Context) (*SupportCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportCaseUpdateOne) SaveX(ctx context.Context) *SupportCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupportCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supportcase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SupportCase.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := supportcase.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "SupportCase.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseType(); ok {
		if err := supportcase.CaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "case_type", err: fmt.Errorf(`repo: validator failed for field "SupportCase.case_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportCaseUpdateOne) sqlSave(ctx context.Context) (_node *SupportCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportcase.Table, supportcase.Columns, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SupportCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supportcase.FieldID)
		for _, f := range fields {
			if !supportcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != supportcase.FieldID {
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
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supportcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(supportcase.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(supportcase.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(supportcase.FieldCaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(supportcase.FieldAccountID, field.TypeUUID, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(supportcase.FieldAccountID, field.TypeUUID)
	}
	if value, ok := _u.mutation.KanbanOrder(); ok {
		_spec.SetField(supportcase.FieldKanbanOrder, field.TypeOther, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(supportcase.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssigneesIDs(); len(nodes) > 0 && !_u.mutation.AssigneesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SupportCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
