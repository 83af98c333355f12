package cases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

func (s *caseService) Move(ctx context.Context, a model.Actor, caseID uuid.UUID, req MoveRequest) (*Card, error) {
	var before, after *model.Case

	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		c, err := tx.GetCase(ctx, a.OrgID, caseID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCaseNotFound
		}
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}
		if err := s.policy.AuthorizeCase(ctx, a, c, authorize.ActionUpdate); err != nil {
			return err
		}
		if err := validateMove(caseID, req); err != nil {
			return err
		}
		before = c.Clone()

		if req.StageID.Set {
			if req.StageID.Value == nil {
				c.StageID = nil
			} else if err := s.enterStage(ctx, tx, c, *req.StageID.Value); err != nil {
				return err
			}
		}
		if req.Status != nil {
			c.Status = *req.Status
		}

		p, err := s.resolvePlacement(ctx, tx, a, req)
		if err != nil {
			return err
		}
		order, err := position(ctx, tx, s.step, c, model.ColumnOf(c), p)
		if err != nil {
			return err
		}
		c.KanbanOrder = order

		if err := tx.SaveCasePosition(ctx, c); err != nil {
			return fmt.Errorf("save case position: %w", err)
		}
		after = c
		return nil
	})
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			s.metrics.rejected(ctx, reason)
		}
		return nil, err
	}

	mode := ModeStatus
	if after.StageID != nil {
		mode = ModePipeline
	}
	s.metrics.moved(ctx, mode)
	s.publishMoved(ctx, a, before, after)

	card := toCard(after)
	return &card, nil
}

func validateMove(caseID uuid.UUID, req MoveRequest) error {
	if req.empty() {
		return invalid("non_field_errors",
			"provide at least one of stage_id, status, kanban_order, above_case_id or below_case_id")
	}
	errs := fieldErrors{}
	if req.Status != nil && !model.IsStatus(*req.Status) {
		errs.add("status", fmt.Sprintf("%q is not a valid status", *req.Status))
	}
	if req.AboveCaseID != nil && *req.AboveCaseID == caseID {
		errs.add("above_case_id", "a case cannot be placed relative to itself")
	}
	if req.BelowCaseID != nil && *req.BelowCaseID == caseID {
		errs.add("below_case_id", "a case cannot be placed relative to itself")
	}
	return errs.err()
}

// enterStage moves c into the stage, enforcing its WIP limit and syncing the
// mapped status. The stage row stays locked until the transaction ends so
// concurrent moves into it are serialized.
func (s *caseService) enterStage(ctx context.Context, tx store.Store, c *model.Case, stageID uuid.UUID) error {
	st, err := tx.GetStage(ctx, c.OrgID, stageID, true)
	if errors.Is(err, store.ErrNotFound) {
		return ErrStageNotFound
	}
	if err != nil {
		return fmt.Errorf("get stage: %w", err)
	}

	if st.WIPLimit != nil {
		n, err := tx.CountCases(ctx, model.CaseQuery{
			OrgID:     c.OrgID,
			StageID:   &st.ID,
			ExcludeID: &c.ID,
		})
		if err != nil {
			return fmt.Errorf("count stage occupants: %w", err)
		}
		if n >= *st.WIPLimit {
			return wipLimitReached(st.Name, *st.WIPLimit, n)
		}
	}

	id := st.ID
	c.StageID = &id
	if st.MapsToStatus != nil {
		c.Status = *st.MapsToStatus
	}
	return nil
}

// resolvePlacement loads the neighbour cases. A neighbour a cannot see is
// reported as missing, the same as on the board.
func (s *caseService) resolvePlacement(ctx context.Context, tx store.Store, a model.Actor, req MoveRequest) (placement, error) {
	p := placement{explicit: req.KanbanOrder}

	load := func(id *uuid.UUID, field string) (*model.Case, error) {
		if id == nil {
			return nil, nil
		}
		c, err := tx.GetCase(ctx, a.OrgID, *id)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", field, ErrCaseNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", field, err)
		}
		if !s.policy.CanSee(a, c) {
			return nil, fmt.Errorf("%s: %w", field, ErrCaseNotFound)
		}
		return c, nil
	}

	var err error
	if p.above, err = load(req.AboveCaseID, "above_case_id"); err != nil {
		return p, err
	}
	if p.below, err = load(req.BelowCaseID, "below_case_id"); err != nil {
		return p, err
	}
	return p, nil
}

func (s *caseService) publishMoved(ctx context.Context, a model.Actor, before, after *model.Case) {
	ev := CaseMoved{
		CaseID:      after.ID,
		OrgID:       after.OrgID,
		FromStageID: before.StageID,
		ToStageID:   after.StageID,
		FromStatus:  before.Status,
		ToStatus:    after.Status,
		KanbanOrder: after.KanbanOrder,
		MovedBy:     a.UserID,
		MovedAt:     after.UpdatedAt,
	}
	if err := s.pub.Publish(ctx, caseMovedSubject(after.ID), ev); err != nil {
		slog.Warn("cases: publish case moved failed", "case_id", after.ID, "err", err)
	}
}

func rejectionReason(err error) string {
	var (
		rule *RuleError
		verr *ValidationError
	)
	switch {
	case errors.As(err, &rule):
		return rejectWIPLimit
	case errors.As(err, &verr):
		return rejectInvalid
	case errors.Is(err, ErrCaseAccessDenied), errors.Is(err, ErrPermissionDenied):
		return rejectForbidden
	case errors.Is(err, ErrCaseNotFound), errors.Is(err, ErrStageNotFound):
		return rejectNotFound
	}
	return ""
}
