// Code generated by ent, DO NOT EDIT.

package casestage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the casestage type in the database.
	Label = "case_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "order"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldStageType holds the string denoting the stage_type field in the database.
	FieldStageType = "stage_type"
	// FieldMapsToStatus holds the string denoting the maps_to_status field in the database.
	FieldMapsToStatus = "maps_to_status"
	// FieldWipLimit holds the string denoting the wip_limit field in the database.
	FieldWipLimit = "wip_limit"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgePipeline holds the string denoting the pipeline edge name in mutations.
	EdgePipeline = "pipeline"
	// EdgeCases holds the string denoting the cases edge name in mutations.
	EdgeCases = "cases"
	// Table holds the table name of the casestage in the database.
	Table = "case_stages"
	// PipelineTable is the table that holds the pipeline relation/edge.
	PipelineTable = "case_stages"
	// PipelineInverseTable is the table name for the CasePipeline entity.
	// It exists in this package in order to avoid circular dependency with the "casepipeline" package.
	PipelineInverseTable = "case_pipelines"
	// PipelineColumn is the table column denoting the pipeline relation/edge.
	PipelineColumn = "pipeline_id"
	// CasesTable is the table that holds the cases relation/edge.
	CasesTable = "cases"
	// CasesInverseTable is the table name for the SupportCase entity.
	// It exists in this package in order to avoid circular dependency with the "supportcase" package.
	CasesInverseTable = "cases"
	// CasesColumn is the table column denoting the cases relation/edge.
	CasesColumn = "stage_id"
)

// Columns holds all SQL columns for casestage fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPipelineID,
	FieldName,
	FieldPosition,
	FieldColor,
	FieldStageType,
	FieldMapsToStatus,
	FieldWipLimit,
	FieldCreatedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultColor holds the default value on creation for the "color" field.
	DefaultColor string
	// ColorValidator is a validator for the "color" field. It is called by the builders before save.
	ColorValidator func(string) error
	// MapsToStatusValidator is a validator for the "maps_to_status" field. It is called by the builders before save.
	MapsToStatusValidator func(string) error
	// WipLimitValidator is a validator for the "wip_limit" field. It is called by the builders before save.
	WipLimitValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// StageType defines the type for the "stage_type" enum field.
type StageType string

// StageTypeOpen is the default value of the StageType enum.
const DefaultStageType = StageTypeOpen

// StageType values.
const (
	StageTypeOpen       StageType = "open"
	StageTypeInProgress StageType = "in_progress"
	StageTypeCompleted  StageType = "completed"
	StageTypeRejected   StageType = "rejected"
)

func (st StageType) String() string {
	return string(st)
}

// StageTypeValidator is a validator for the "stage_type" field enum values. It is called by the builders before save.
func StageTypeValidator(st StageType) error {
	switch st {
	case StageTypeOpen, StageTypeInProgress, StageTypeCompleted, StageTypeRejected:
		return nil
	default:
		return fmt.Errorf("casestage: invalid enum value for stage_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the CaseStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByStageType orders the results by the stage_type field.
func ByStageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageType, opts...).ToFunc()
}

// ByMapsToStatus orders the results by the maps_to_status field.
func ByMapsToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMapsToStatus, opts...).ToFunc()
}

// ByWipLimit orders the results by the wip_limit field.
func ByWipLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWipLimit, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByPipelineField orders the results by pipeline field.
func ByPipelineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineStep(), sql.OrderByField(field, opts...))
	}
}

// ByCasesCount orders the results by cases count.
func ByCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCasesStep(), opts...)
	}
}

// ByCases orders the results by cases terms.
func ByCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPipelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
	)
}
func newCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CasesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CasesTable, CasesColumn),
	)
}
