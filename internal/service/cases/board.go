package cases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

// boardConcurrency bounds the column queries run at once.
const boardConcurrency = 4

func (s *caseService) Board(ctx context.Context, a model.Actor, req BoardRequest) (*Board, error) {
	if err := s.policy.Require(ctx, a, authorize.ResourceCase, authorize.ActionList, ErrPermissionDenied); err != nil {
		return nil, err
	}
	if err := validateFilter(req.Filter); err != nil {
		return nil, err
	}

	base := model.CaseQuery{
		OrgID:     a.OrgID,
		VisibleTo: s.policy.Visibility(a),
		Filter:    req.Filter,
	}

	var (
		board *Board
		err   error
	)
	if req.PipelineID == nil {
		board, err = s.statusBoard(ctx, base)
	} else {
		board, err = s.pipelineBoard(ctx, base, *req.PipelineID)
	}
	if err != nil {
		return nil, err
	}
	s.metrics.queried(ctx, board.Mode)
	return board, nil
}

func validateFilter(f model.CaseFilter) error {
	errs := fieldErrors{}
	if f.Priority != nil && !model.IsPriority(*f.Priority) {
		errs.add("priority", fmt.Sprintf("%q is not a valid priority", *f.Priority))
	}
	if f.CaseType != nil && !model.IsCaseType(*f.CaseType) {
		errs.add("case_type", fmt.Sprintf("%q is not a valid case type", *f.CaseType))
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedFrom.After(*f.CreatedTo) {
		errs.add("created_at__gte", "must not be after created_at__lte")
	}
	return errs.err()
}

func (s *caseService) statusBoard(ctx context.Context, base model.CaseQuery) (*Board, error) {
	columns := make([]BoardColumn, len(model.Statuses))
	for i, status := range model.Statuses {
		style := model.StyleOf(status)
		columns[i] = BoardColumn{
			ID:             status,
			Name:           status,
			Order:          style.Order,
			Color:          style.Color,
			StageType:      style.Class,
			IsStatusColumn: true,
		}
	}

	total, err := s.fillColumns(ctx, base, columns, func(i int, q *model.CaseQuery) {
		status := model.Statuses[i]
		q.Status = &status
	})
	if err != nil {
		return nil, err
	}
	return &Board{Mode: ModeStatus, Columns: columns, TotalCases: total}, nil
}

func (s *caseService) pipelineBoard(ctx context.Context, base model.CaseQuery, pipelineID uuid.UUID) (*Board, error) {
	p, err := s.st.GetPipeline(ctx, base.OrgID, pipelineID, true)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPipelineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pipeline: %w", err)
	}

	columns := make([]BoardColumn, len(p.Stages))
	for i, st := range p.Stages {
		columns[i] = BoardColumn{
			ID:           st.ID.String(),
			Name:         st.Name,
			Order:        st.Order,
			Color:        st.Color,
			StageType:    st.StageType,
			WIPLimit:     st.WIPLimit,
			MapsToStatus: st.MapsToStatus,
		}
	}

	base.PipelineID = &p.ID
	total, err := s.fillColumns(ctx, base, columns, func(i int, q *model.CaseQuery) {
		id := p.Stages[i].ID
		q.StageID = &id
	})
	if err != nil {
		return nil, err
	}
	return &Board{Mode: ModePipeline, Pipeline: toSummary(p), Columns: columns, TotalCases: total}, nil
}

// fillColumns loads the cards and the untruncated count of every column and
// returns the size of the whole filtered set. narrow restricts a copy of
// base to the i-th column.
func (s *caseService) fillColumns(ctx context.Context, base model.CaseQuery, columns []BoardColumn, narrow func(i int, q *model.CaseQuery)) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(boardConcurrency)

	var total int
	g.Go(func() error {
		n, err := s.st.CountCases(gctx, base)
		if err != nil {
			return fmt.Errorf("count cases: %w", err)
		}
		total = n
		return nil
	})

	for i := range columns {
		g.Go(func() error {
			q := base
			narrow(i, &q)

			n, err := s.st.CountCases(gctx, q)
			if err != nil {
				return fmt.Errorf("count column %s: %w", columns[i].ID, err)
			}
			q.Limit = s.cardLimit
			cs, err := s.st.QueryCases(gctx, q)
			if err != nil {
				return fmt.Errorf("query column %s: %w", columns[i].ID, err)
			}
			columns[i].CaseCount = n
			columns[i].Cases = toCards(cs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
