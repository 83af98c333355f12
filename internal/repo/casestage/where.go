// Code generated by ent, DO NOT EDIT.

package casestage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Alijeyrad/crm_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldOrganizationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldUpdatedAt, v))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldPipelineID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldPosition, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldColor, v))
}

// MapsToStatus applies equality check predicate on the "maps_to_status" field. It's identical to MapsToStatusEQ.
func MapsToStatus(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldMapsToStatus, v))
}

// WipLimit applies equality check predicate on the "wip_limit" field. It's identical to WipLimitEQ.
func WipLimit(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldWipLimit, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldCreatedBy, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldOrganizationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldUpdatedAt, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldPipelineID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContainsFold(FieldName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldPosition, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContainsFold(FieldColor, v))
}

// StageTypeEQ applies the EQ predicate on the "stage_type" field.
func StageTypeEQ(v StageType) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldStageType, v))
}

// StageTypeNEQ applies the NEQ predicate on the "stage_type" field.
func StageTypeNEQ(v StageType) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldStageType, v))
}

// StageTypeIn applies the In predicate on the "stage_type" field.
func StageTypeIn(vs ...StageType) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldStageType, vs...))
}

// StageTypeNotIn applies the NotIn predicate on the "stage_type" field.
func StageTypeNotIn(vs ...StageType) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldStageType, vs...))
}

// MapsToStatusEQ applies the EQ predicate on the "maps_to_status" field.
func MapsToStatusEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldMapsToStatus, v))
}

// MapsToStatusNEQ applies the NEQ predicate on the "maps_to_status" field.
func MapsToStatusNEQ(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldMapsToStatus, v))
}

// MapsToStatusIn applies the In predicate on the "maps_to_status" field.
func MapsToStatusIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldMapsToStatus, vs...))
}

// MapsToStatusNotIn applies the NotIn predicate on the "maps_to_status" field.
func MapsToStatusNotIn(vs ...string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldMapsToStatus, vs...))
}

// MapsToStatusGT applies the GT predicate on the "maps_to_status" field.
func MapsToStatusGT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldMapsToStatus, v))
}

// MapsToStatusGTE applies the GTE predicate on the "maps_to_status" field.
func MapsToStatusGTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldMapsToStatus, v))
}

// MapsToStatusLT applies the LT predicate on the "maps_to_status" field.
func MapsToStatusLT(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldMapsToStatus, v))
}

// MapsToStatusLTE applies the LTE predicate on the "maps_to_status" field.
func MapsToStatusLTE(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldMapsToStatus, v))
}

// MapsToStatusContains applies the Contains predicate on the "maps_to_status" field.
func MapsToStatusContains(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContains(FieldMapsToStatus, v))
}

// MapsToStatusHasPrefix applies the HasPrefix predicate on the "maps_to_status" field.
func MapsToStatusHasPrefix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasPrefix(FieldMapsToStatus, v))
}

// MapsToStatusHasSuffix applies the HasSuffix predicate on the "maps_to_status" field.
func MapsToStatusHasSuffix(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldHasSuffix(FieldMapsToStatus, v))
}

// MapsToStatusIsNil applies the IsNil predicate on the "maps_to_status" field.
func MapsToStatusIsNil() predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIsNull(FieldMapsToStatus))
}

// MapsToStatusNotNil applies the NotNil predicate on the "maps_to_status" field.
func MapsToStatusNotNil() predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotNull(FieldMapsToStatus))
}

// MapsToStatusEqualFold applies the EqualFold predicate on the "maps_to_status" field.
func MapsToStatusEqualFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEqualFold(FieldMapsToStatus, v))
}

// MapsToStatusContainsFold applies the ContainsFold predicate on the "maps_to_status" field.
func MapsToStatusContainsFold(v string) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldContainsFold(FieldMapsToStatus, v))
}

// WipLimitEQ applies the EQ predicate on the "wip_limit" field.
func WipLimitEQ(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldWipLimit, v))
}

// WipLimitNEQ applies the NEQ predicate on the "wip_limit" field.
func WipLimitNEQ(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldWipLimit, v))
}

// WipLimitIn applies the In predicate on the "wip_limit" field.
func WipLimitIn(vs ...int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldWipLimit, vs...))
}

// WipLimitNotIn applies the NotIn predicate on the "wip_limit" field.
func WipLimitNotIn(vs ...int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldWipLimit, vs...))
}

// WipLimitGT applies the GT predicate on the "wip_limit" field.
func WipLimitGT(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldWipLimit, v))
}

// WipLimitGTE applies the GTE predicate on the "wip_limit" field.
func WipLimitGTE(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldWipLimit, v))
}

// WipLimitLT applies the LT predicate on the "wip_limit" field.
func WipLimitLT(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldWipLimit, v))
}

// WipLimitLTE applies the LTE predicate on the "wip_limit" field.
func WipLimitLTE(v int) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldWipLimit, v))
}

// WipLimitIsNil applies the IsNil predicate on the "wip_limit" field.
func WipLimitIsNil() predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIsNull(FieldWipLimit))
}

// WipLimitNotNil applies the NotNil predicate on the "wip_limit" field.
func WipLimitNotNil() predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotNull(FieldWipLimit))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.CaseStage {
	return predicate.CaseStage(sql.FieldLTE(FieldCreatedBy, v))
}

// HasPipeline applies the HasEdge predicate on the "pipeline" edge.
func HasPipeline() predicate.CaseStage {
	return predicate.CaseStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineWith applies the HasEdge predicate on the "pipeline" edge with a given conditions (other predicates).
func HasPipelineWith(preds ...predicate.CasePipeline) predicate.CaseStage {
	return predicate.CaseStage(func(s *sql.Selector) {
		step := newPipelineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCases applies the HasEdge predicate on the "cases" edge.
func HasCases() predicate.CaseStage {
	return predicate.CaseStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CasesTable, CasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCasesWith applies the HasEdge predicate on the "cases" edge with a given conditions (other predicates).
func HasCasesWith(preds ...predicate.SupportCase) predicate.CaseStage {
	return predicate.CaseStage(func(s *sql.Selector) {
		step := newCasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseStage) predicate.CaseStage {
	return predicate.CaseStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseStage) predicate.CaseStage {
	return predicate.CaseStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseStage) predicate.CaseStage {
	return predicate.CaseStage(sql.NotPredicates(p))
}
