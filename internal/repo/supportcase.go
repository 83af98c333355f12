// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupportCase is the model entity for the SupportCase schema.
type SupportCase struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → organizations.id
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status supportcase.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority supportcase.Priority `json:"priority,omitempty"`
	// CaseType holds the value of the "case_type" field.
	CaseType supportcase.CaseType `json:"case_type,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	// FK → case_stages.id, null for status board cases
	StageID *uuid.UUID `json:"stage_id,omitempty"`
	// Sort key inside the case's column
	KanbanOrder decimal.Decimal `json:"kanban_order,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupportCaseQuery when eager-loading is set.
	Edges        SupportCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupportCaseEdges holds the relations/edges for other nodes in the graph.
type SupportCaseEdges struct {
	// Stage holds the value of the stage edge.
	Stage *CaseStage `json:"stage,omitempty"`
	// Assignees holds the value of the assignees edge.
	Assignees []*User `json:"assignees,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupportCaseEdges) StageOrErr() (*CaseStage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: casestage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// AssigneesOrErr returns the Assignees value or an error if the edge
// was not loaded in eager-loading.
func (e SupportCaseEdges) AssigneesOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.Assignees, nil
	}
	return nil, &NotLoadedError{edge: "assignees"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e SupportCaseEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[2] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupportCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supportcase.FieldAccountID, supportcase.FieldStageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case supportcase.FieldKanbanOrder:
			values[i] = new(decimal.Decimal)
		case supportcase.FieldName, supportcase.FieldDescription, supportcase.FieldStatus, supportcase.FieldPriority, supportcase.FieldCaseType:
			values[i] = new(sql.NullString)
		case supportcase.FieldCreatedAt, supportcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case supportcase.FieldID, supportcase.FieldOrganizationID, supportcase.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupportCase fields.
func (_m *SupportCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supportcase.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case supportcase.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				_m.OrganizationID = *value
			}
		case supportcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supportcase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case supportcase.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case supportcase.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case supportcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = supportcase.Status(value.String)
			}
		case supportcase.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = supportcase.Priority(value.String)
			}
		case supportcase.FieldCaseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_type", values[i])
			} else if value.Valid {
				_m.CaseType = supportcase.CaseType(value.String)
			}
		case supportcase.FieldAccountID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = new(uuid.UUID)
				*_m.AccountID = *value.S.(*uuid.UUID)
			}
		case supportcase.FieldStageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = new(uuid.UUID)
				*_m.StageID = *value.S.(*uuid.UUID)
			}
		case supportcase.FieldKanbanOrder:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field kanban_order", values[i])
			} else if value != nil {
				_m.KanbanOrder = *value
			}
		case supportcase.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				_m.CreatedBy = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SupportCase.
// This includes values selected through modifiers, order, etc.
func (_m *SupportCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStage queries the "stage" edge of the SupportCase entity.
func (_m *SupportCase) QueryStage() *CaseStageQuery {
	return NewSupportCaseClient(_m.config).QueryStage(_m)
}

// QueryAssignees queries the "assignees" edge of the SupportCase entity.
func (_m *SupportCase) QueryAssignees() *UserQuery {
	return NewSupportCaseClient(_m.config).QueryAssignees(_m)
}

// QueryTags queries the "tags" edge of the SupportCase entity.
func (_m *SupportCase) QueryTags() *TagQuery {
	return NewSupportCaseClient(_m.config).QueryTags(_m)
}

// Update returns a builder for updating this SupportCase.
// Note that you need to call SupportCase.Unwrap() before calling this method if this SupportCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupportCase) Update() *SupportCaseUpdateOne {
	return NewSupportCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupportCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupportCase) Unwrap() *SupportCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SupportCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupportCase) String() string {
	var builder strings.Builder
	builder.WriteString("SupportCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("case_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseType))
	builder.WriteString(", ")
	if v := _m.AccountID; v != nil {
		builder.WriteString("account_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StageID; v != nil {
		builder.WriteString("stage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("kanban_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.KanbanOrder))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteByte(')')
	return builder.String()
}

// SupportCases is a parsable slice of SupportCase.
type SupportCases []*SupportCase
