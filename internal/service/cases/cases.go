// Package cases is the case board: pipelines and their stages, the board
// read model in status or pipeline mode, and moving cards between columns
// with fractional ordering.
package cases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/events"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BoardRequest struct {
	// PipelineID selects pipeline mode. Nil means status mode.
	PipelineID *uuid.UUID
	Filter     model.CaseFilter
}

type MoveRequest struct {
	// StageID set to null clears the stage and leaves the status alone.
	StageID     model.Nullable[uuid.UUID] `json:"stage_id"`
	Status      *string                   `json:"status"`
	KanbanOrder *decimal.Decimal          `json:"kanban_order"`
	AboveCaseID *uuid.UUID                `json:"above_case_id"`
	BelowCaseID *uuid.UUID                `json:"below_case_id"`
}

func (r MoveRequest) empty() bool {
	return !r.StageID.Set && r.Status == nil && r.KanbanOrder == nil &&
		r.AboveCaseID == nil && r.BelowCaseID == nil
}

type CreateCaseRequest struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	CaseType    string      `json:"case_type"`
	AccountID   *uuid.UUID  `json:"account_id"`
	StageID     *uuid.UUID  `json:"stage_id"`
	Assignees   []uuid.UUID `json:"assigned_to"`
	Tags        []uuid.UUID `json:"tags"`
}

type CreatePipelineRequest struct {
	Name                string `json:"name" validate:"required,max=100"`
	CreateDefaultStages bool   `json:"create_default_stages"`
}

type UpdatePipelineRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type CreateStageRequest struct {
	// OrgID defaults to the pipeline's organization.
	OrgID        *uuid.UUID `json:"org_id"`
	Name         string     `json:"name" validate:"required,max=100"`
	Order        *int       `json:"order"`
	Color        string     `json:"color"`
	StageType    string     `json:"stage_type"`
	MapsToStatus *string    `json:"maps_to_status"`
	WIPLimit     *int       `json:"wip_limit"`
}

type UpdateStageRequest struct {
	Name         *string                `json:"name" validate:"omitempty,max=100"`
	Order        *int                   `json:"order"`
	Color        *string                `json:"color"`
	StageType    *string                `json:"stage_type"`
	MapsToStatus model.Nullable[string] `json:"maps_to_status"`
	WIPLimit     model.Nullable[int]    `json:"wip_limit"`
}

type ReorderStagesRequest struct {
	StageIDs []uuid.UUID `json:"stage_ids"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Board(ctx context.Context, a model.Actor, req BoardRequest) (*Board, error)
	Move(ctx context.Context, a model.Actor, caseID uuid.UUID, req MoveRequest) (*Card, error)

	CreateCase(ctx context.Context, a model.Actor, req CreateCaseRequest) (*Card, error)
	GetCase(ctx context.Context, a model.Actor, caseID uuid.UUID) (*Card, error)

	ListPipelines(ctx context.Context, a model.Actor) ([]*PipelineView, error)
	GetPipeline(ctx context.Context, a model.Actor, id uuid.UUID) (*PipelineView, error)
	CreatePipeline(ctx context.Context, a model.Actor, req CreatePipelineRequest) (*PipelineView, error)
	UpdatePipeline(ctx context.Context, a model.Actor, id uuid.UUID, req UpdatePipelineRequest) (*PipelineView, error)
	DeletePipeline(ctx context.Context, a model.Actor, id uuid.UUID) error

	CreateStage(ctx context.Context, a model.Actor, pipelineID uuid.UUID, req CreateStageRequest) (*StageView, error)
	UpdateStage(ctx context.Context, a model.Actor, id uuid.UUID, req UpdateStageRequest) (*StageView, error)
	DeleteStage(ctx context.Context, a model.Actor, id uuid.UUID) error
	ReorderStages(ctx context.Context, a model.Actor, pipelineID uuid.UUID, req ReorderStagesRequest) ([]*StageView, error)

	// RenumberPipeline compacts every stage column of a pipeline.
	RenumberPipeline(ctx context.Context, a model.Actor, pipelineID uuid.UUID) (int, error)
	// RenumberColumn compacts one column. It is a maintenance operation and
	// performs no authorization.
	RenumberColumn(ctx context.Context, orgID uuid.UUID, col model.Column) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type caseService struct {
	st        store.Store
	policy    *Policy
	pub       events.Publisher
	cardLimit int
	step      decimal.Decimal
	metrics   *boardMetrics
}

func New(st store.Store, policy *Policy, pub events.Publisher, cfg config.KanbanConfig) Service {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if cfg.CardLimit <= 0 {
		cfg.CardLimit = config.DefaultCardLimit
	}
	if cfg.OrderStep <= 0 {
		cfg.OrderStep = config.DefaultOrderStep
	}
	return &caseService{
		st:        st,
		policy:    policy,
		pub:       pub,
		cardLimit: cfg.CardLimit,
		step:      decimal.NewFromInt(cfg.OrderStep),
		metrics:   newBoardMetrics(),
	}
}
