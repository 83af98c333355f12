package cases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

func (s *caseService) RenumberPipeline(ctx context.Context, a model.Actor, pipelineID uuid.UUID) (int, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourcePipeline, authorize.ActionUpdate); err != nil {
		return 0, err
	}

	total := 0
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		p, err := s.loadPipeline(ctx, tx, a.OrgID, pipelineID, false)
		if err != nil {
			return err
		}
		for _, st := range p.Stages {
			n, err := s.renumber(ctx, tx, a.OrgID, model.StageColumn(st.ID))
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *caseService) RenumberColumn(ctx context.Context, orgID uuid.UUID, col model.Column) (int, error) {
	var n int
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		var err error
		n, err = s.renumber(ctx, tx, orgID, col)
		return err
	})
	return n, err
}

// renumber rewrites the orders of col to step, 2*step, ... keeping the
// current board order, and returns how many cases changed.
func (s *caseService) renumber(ctx context.Context, tx store.Store, orgID uuid.UUID, col model.Column) (int, error) {
	cs, err := tx.QueryCases(ctx, model.CaseQuery{OrgID: orgID, Column: &col})
	if err != nil {
		return 0, fmt.Errorf("query column %s: %w", col, err)
	}

	orders := make(map[uuid.UUID]decimal.Decimal)
	for i, c := range cs {
		want := s.step.Mul(decimal.NewFromInt(int64(i + 1)))
		if !c.KanbanOrder.Equal(want) {
			orders[c.ID] = want
		}
	}
	if len(orders) == 0 {
		return 0, nil
	}
	if err := tx.SetKanbanOrders(ctx, orders); err != nil {
		return 0, fmt.Errorf("renumber column %s: %w", col, err)
	}
	return len(orders), nil
}
