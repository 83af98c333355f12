// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/google/uuid"
)

// CaseStage is the model entity for the CaseStage schema.
type CaseStage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → organizations.id
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → case_pipelines.id
	PipelineID uuid.UUID `json:"pipeline_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// StageType holds the value of the "stage_type" field.
	StageType casestage.StageType `json:"stage_type,omitempty"`
	// Case status set when a case enters the stage
	MapsToStatus *string `json:"maps_to_status,omitempty"`
	// Maximum cases in the stage, null for unlimited
	WipLimit *int `json:"wip_limit,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseStageQuery when eager-loading is set.
	Edges        CaseStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseStageEdges holds the relations/edges for other nodes in the graph.
type CaseStageEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *CasePipeline `json:"pipeline,omitempty"`
	// Cases holds the value of the cases edge.
	Cases []*SupportCase `json:"cases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseStageEdges) PipelineOrErr() (*CasePipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: casepipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// CasesOrErr returns the Cases value or an error if the edge
// was not loaded in eager-loading.
func (e CaseStageEdges) CasesOrErr() ([]*SupportCase, error) {
	if e.loadedTypes[1] {
		return e.Cases, nil
	}
	return nil, &NotLoadedError{edge: "cases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case casestage.FieldPosition, casestage.FieldWipLimit:
			values[i] = new(sql.NullInt64)
		case casestage.FieldName, casestage.FieldColor, casestage.FieldStageType, casestage.FieldMapsToStatus:
			values[i] = new(sql.NullString)
		case casestage.FieldCreatedAt, casestage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case casestage.FieldID, casestage.FieldOrganizationID, casestage.FieldPipelineID, casestage.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseStage fields.
func (_m *CaseStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case casestage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case casestage.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				_m.OrganizationID = *value
			}
		case casestage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case casestage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case casestage.FieldPipelineID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value != nil {
				_m.PipelineID = *value
			}
		case casestage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case casestage.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case casestage.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case casestage.FieldStageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_type", values[i])
			} else if value.Valid {
				_m.StageType = casestage.StageType(value.String)
			}
		case casestage.FieldMapsToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maps_to_status", values[i])
			} else if value.Valid {
				_m.MapsToStatus = new(string)
				*_m.MapsToStatus = value.String
			}
		case casestage.FieldWipLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wip_limit", values[i])
			} else if value.Valid {
				_m.WipLimit = new(int)
				*_m.WipLimit = int(value.Int64)
			}
		case casestage.FieldCreatedBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CaseStage.
// This includes values selected through modifiers, order, etc.
func (_m *CaseStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the CaseStage entity.
func (_m *CaseStage) QueryPipeline() *CasePipelineQuery {
	return NewCaseStageClient(_m.config).QueryPipeline(_m)
}

// QueryCases queries the "cases" edge of the CaseStage entity.
func (_m *CaseStage) QueryCases() *SupportCaseQuery {
	return NewCaseStageClient(_m.config).QueryCases(_m)
}

// Update returns a builder for updating this CaseStage.
// Note that you need to call CaseStage.Unwrap() before calling this method if this CaseStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseStage) Update() *CaseStageUpdateOne {
	return NewCaseStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseStage) Unwrap() *CaseStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CaseStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseStage) String() string {
	var builder strings.Builder
	builder.WriteString("CaseStage(")
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
	builder.WriteString("pipeline_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("stage_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageType))
	builder.WriteString(", ")
	if v := _m.MapsToStatus; v != nil {
		builder.WriteString("maps_to_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WipLimit; v != nil {
		builder.WriteString("wip_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteByte(')')
	return builder.String()
}

// CaseStages is a parsable slice of CaseStage.
type CaseStages []*CaseStage
