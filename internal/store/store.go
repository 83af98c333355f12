// Package store defines the persistence port of the case board. The ent
// backed implementation lives in entstore and an in-memory one in memstore.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with an existing one")
)

type Store interface {
	// Tenancy
	GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetMember(ctx context.Context, orgID, userID uuid.UUID) (*model.Member, error)
	// CountMembers counts the active members of orgID among userIDs.
	CountMembers(ctx context.Context, orgID uuid.UUID, userIDs []uuid.UUID) (int, error)
	AccountExists(ctx context.Context, orgID, id uuid.UUID) (bool, error)
	CountTags(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (int, error)

	// Pipelines
	ListPipelines(ctx context.Context, orgID uuid.UUID) ([]*model.Pipeline, error)
	GetPipeline(ctx context.Context, orgID, id uuid.UUID, activeOnly bool) (*model.Pipeline, error)
	CreatePipeline(ctx context.Context, p *model.Pipeline, stages []*model.Stage) (*model.Pipeline, error)
	UpdatePipeline(ctx context.Context, p *model.Pipeline) error
	// CountPipelineCases counts the cases linked to any stage of the pipeline.
	CountPipelineCases(ctx context.Context, orgID, pipelineID uuid.UUID) (int, error)

	// Stages
	GetStage(ctx context.Context, orgID, id uuid.UUID, forUpdate bool) (*model.Stage, error)
	ListStages(ctx context.Context, orgID, pipelineID uuid.UUID) ([]*model.Stage, error)
	CreateStage(ctx context.Context, s *model.Stage) (*model.Stage, error)
	UpdateStage(ctx context.Context, s *model.Stage) error
	DeleteStage(ctx context.Context, orgID, id uuid.UUID) error
	SetStageOrders(ctx context.Context, orders map[uuid.UUID]int) error

	// Cases
	GetCase(ctx context.Context, orgID, id uuid.UUID) (*model.Case, error)
	CreateCase(ctx context.Context, c *model.Case) (*model.Case, error)
	// QueryCases returns matching cases ordered by kanban_order ascending,
	// newest first among equal orders.
	QueryCases(ctx context.Context, q model.CaseQuery) ([]*model.Case, error)
	CountCases(ctx context.Context, q model.CaseQuery) (int, error)
	// NeighborAfter returns the first case of col ordered strictly after
	// order, or nil when there is none.
	NeighborAfter(ctx context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error)
	// NeighborBefore returns the last case of col ordered strictly before
	// order, or nil when there is none.
	NeighborBefore(ctx context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error)
	// LastInColumn returns the case with the highest order in col, or nil.
	LastInColumn(ctx context.Context, orgID uuid.UUID, col model.Column, exclude uuid.UUID) (*model.Case, error)
	// SaveCasePosition persists stage, status and kanban_order of c.
	SaveCasePosition(ctx context.Context, c *model.Case) error
	SetKanbanOrders(ctx context.Context, orders map[uuid.UUID]decimal.Decimal) error

	// InTx runs fn inside a transaction. The Store passed to fn must be used
	// for every call that belongs to the transaction. Nested calls join the
	// outer transaction.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
