package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Case statuses.
const (
	StatusNew       = "New"
	StatusAssigned  = "Assigned"
	StatusPending   = "Pending"
	StatusClosed    = "Closed"
	StatusRejected  = "Rejected"
	StatusDuplicate = "Duplicate"
)

// Statuses is the canonical status list in board order.
var Statuses = []string{
	StatusNew,
	StatusAssigned,
	StatusPending,
	StatusClosed,
	StatusRejected,
	StatusDuplicate,
}

const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

const (
	CaseTypeQuestion = "Question"
	CaseTypeIncident = "Incident"
	CaseTypeProblem  = "Problem"
)

var CaseTypes = []string{CaseTypeQuestion, CaseTypeIncident, CaseTypeProblem}

func IsStatus(s string) bool   { return slices.Contains(Statuses, s) }
func IsPriority(s string) bool { return slices.Contains(Priorities, s) }
func IsCaseType(s string) bool { return slices.Contains(CaseTypes, s) }

// Case is a support ticket as seen by the board.
type Case struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	Name        string
	Description string
	Status      string
	Priority    string
	CaseType    string
	AccountID   *uuid.UUID
	StageID     *uuid.UUID
	KanbanOrder decimal.Decimal
	CreatedBy   uuid.UUID
	Assignees   []uuid.UUID
	Tags        []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Case) IsAssignee(userID uuid.UUID) bool {
	return slices.Contains(c.Assignees, userID)
}

// Clone returns a deep copy.
func (c *Case) Clone() *Case {
	out := *c
	out.AccountID = cloneUUID(c.AccountID)
	out.StageID = cloneUUID(c.StageID)
	out.Assignees = slices.Clone(c.Assignees)
	out.Tags = slices.Clone(c.Tags)
	return &out
}

// CaseFilter holds the optional board filters. All set fields are ANDed.
type CaseFilter struct {
	AssignedTo  *uuid.UUID
	Priority    *string
	CaseType    *string
	Search      string
	AccountID   *uuid.UUID
	TagID       *uuid.UUID
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CaseQuery selects cases inside one organization.
type CaseQuery struct {
	OrgID uuid.UUID
	// VisibleTo restricts the result to cases created by or assigned to this
	// user. Nil means every case of the organization.
	VisibleTo *uuid.UUID
	Filter    CaseFilter

	// PipelineID keeps only cases whose stage belongs to the pipeline.
	PipelineID *uuid.UUID
	// Status matches the status field alone, whatever the stage.
	Status *string
	// StageID matches the stage field alone.
	StageID *uuid.UUID
	// Column matches column membership, see Column.
	Column *Column

	ExcludeID *uuid.UUID
	Limit     int
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
