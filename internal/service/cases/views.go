package cases

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

const (
	ModeStatus   = "status"
	ModePipeline = "pipeline"
)

type Board struct {
	Mode       string           `json:"mode"`
	Pipeline   *PipelineSummary `json:"pipeline"`
	Columns    []BoardColumn    `json:"columns"`
	TotalCases int              `json:"total_cases"`
}

type BoardColumn struct {
	// ID is the stage id in pipeline mode and the status in status mode.
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Order          int     `json:"order"`
	Color          string  `json:"color"`
	StageType      string  `json:"stage_type"`
	WIPLimit       *int    `json:"wip_limit"`
	MapsToStatus   *string `json:"maps_to_status,omitempty"`
	IsStatusColumn bool    `json:"is_status_column"`
	CaseCount      int     `json:"case_count"`
	Cases          []Card  `json:"cases"`
}

// Card is the board projection of a case.
type Card struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	CaseType    string          `json:"case_type"`
	StageID     *uuid.UUID      `json:"stage_id"`
	KanbanOrder decimal.Decimal `json:"kanban_order"`
	AccountID   *uuid.UUID      `json:"account_id"`
	AssignedTo  []uuid.UUID     `json:"assigned_to"`
	Tags        []uuid.UUID     `json:"tags"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PipelineSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	StageCount int       `json:"stage_count"`
}

type PipelineView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	IsActive  bool         `json:"is_active"`
	CreatedBy uuid.UUID    `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Stages    []*StageView `json:"stages"`
}

type StageView struct {
	ID           uuid.UUID `json:"id"`
	PipelineID   uuid.UUID `json:"pipeline_id"`
	OrgID        uuid.UUID `json:"org_id"`
	Name         string    `json:"name"`
	Order        int       `json:"order"`
	Color        string    `json:"color"`
	StageType    string    `json:"stage_type"`
	MapsToStatus *string   `json:"maps_to_status"`
	WIPLimit     *int      `json:"wip_limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toCard(c *model.Case) Card {
	card := Card{
		ID:          c.ID,
		Name:        c.Name,
		Status:      c.Status,
		Priority:    c.Priority,
		CaseType:    c.CaseType,
		StageID:     c.StageID,
		KanbanOrder: c.KanbanOrder,
		AccountID:   c.AccountID,
		AssignedTo:  c.Assignees,
		Tags:        c.Tags,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if card.AssignedTo == nil {
		card.AssignedTo = []uuid.UUID{}
	}
	if card.Tags == nil {
		card.Tags = []uuid.UUID{}
	}
	return card
}

func toCards(cs []*model.Case) []Card {
	out := make([]Card, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCard(c))
	}
	return out
}

func toStageView(s *model.Stage) *StageView {
	return &StageView{
		ID:           s.ID,
		PipelineID:   s.PipelineID,
		OrgID:        s.OrgID,
		Name:         s.Name,
		Order:        s.Order,
		Color:        s.Color,
		StageType:    s.StageType,
		MapsToStatus: s.MapsToStatus,
		WIPLimit:     s.WIPLimit,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toStageViews(ss []*model.Stage) []*StageView {
	out := make([]*StageView, 0, len(ss))
	for _, s := range ss {
		out = append(out, toStageView(s))
	}
	return out
}

func toPipelineView(p *model.Pipeline) *PipelineView {
	return &PipelineView{
		ID:        p.ID,
		Name:      p.Name,
		IsActive:  p.IsActive,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Stages:    toStageViews(p.Stages),
	}
}

func toSummary(p *model.Pipeline) *PipelineSummary {
	return &PipelineSummary{
		ID:         p.ID,
		Name:       p.Name,
		IsActive:   p.IsActive,
		StageCount: len(p.Stages),
	}
}
