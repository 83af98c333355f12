package model

import (
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Stage types.
const (
	StageTypeOpen       = "open"
	StageTypeInProgress = "in_progress"
	StageTypeCompleted  = "completed"
	StageTypeRejected   = "rejected"
)

var StageTypes = []string{StageTypeOpen, StageTypeInProgress, StageTypeCompleted, StageTypeRejected}

func IsStageType(s string) bool { return slices.Contains(StageTypes, s) }

// ColorPattern matches the #RRGGBB colors used by stages.
var ColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const DefaultStageColor = "#6B7280"

type Pipeline struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	Name      string
	IsActive  bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// Stages are ordered by Order when loaded.
	Stages []*Stage
}

type Stage struct {
	ID           uuid.UUID
	PipelineID   uuid.UUID
	OrgID        uuid.UUID
	Name         string
	Order        int
	Color        string
	StageType    string
	MapsToStatus *string
	WIPLimit     *int
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Stage) Clone() *Stage {
	out := *s
	if s.MapsToStatus != nil {
		v := *s.MapsToStatus
		out.MapsToStatus = &v
	}
	if s.WIPLimit != nil {
		v := *s.WIPLimit
		out.WIPLimit = &v
	}
	return &out
}

type stageTemplate struct {
	name      string
	color     string
	stageType string
	status    string
}

var defaultStages = []stageTemplate{
	{"New", "#3B82F6", StageTypeOpen, StatusNew},
	{"Assigned", "#8B5CF6", StageTypeOpen, StatusAssigned},
	{"In Progress", "#F59E0B", StageTypeInProgress, StatusPending},
	{"Resolved", "#10B981", StageTypeCompleted, StatusClosed},
	{"Rejected", "#EF4444", StageTypeRejected, StatusRejected},
}

// DefaultStages returns the five canonical stages for a new pipeline.
func DefaultStages(p *Pipeline) []*Stage {
	out := make([]*Stage, 0, len(defaultStages))
	for i, t := range defaultStages {
		status := t.status
		out = append(out, &Stage{
			PipelineID:   p.ID,
			OrgID:        p.OrgID,
			Name:         t.name,
			Order:        i,
			Color:        t.color,
			StageType:    t.stageType,
			MapsToStatus: &status,
			CreatedBy:    p.CreatedBy,
		})
	}
	return out
}

// StatusStyle is the fixed presentation of a status column.
type StatusStyle struct {
	Order int
	Color string
	Class string // open, closed or rejected
}

var statusStyles = map[string]StatusStyle{
	StatusNew:       {1, "#3B82F6", "open"},
	StatusAssigned:  {2, "#8B5CF6", "open"},
	StatusPending:   {3, "#F59E0B", "open"},
	StatusClosed:    {4, "#10B981", "closed"},
	StatusRejected:  {5, "#EF4444", "rejected"},
	StatusDuplicate: {6, "#6B7280", "closed"},
}

func StyleOf(status string) StatusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return StatusStyle{Order: 99, Color: "#9CA3AF", Class: "open"}
}
