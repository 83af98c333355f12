package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

const errStageNameTaken = "a stage with this name already exists in the pipeline"

func (s *caseService) CreateStage(ctx context.Context, a model.Actor, pipelineID uuid.UUID, req CreateStageRequest) (*StageView, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourceStage, authorize.ActionCreate); err != nil {
		return nil, err
	}

	var created *model.Stage
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		p, err := s.loadPipeline(ctx, tx, a.OrgID, pipelineID, false)
		if err != nil {
			return err
		}
		if req.OrgID != nil && *req.OrgID != p.OrgID {
			return invalid("org_id", "must be the organization of the pipeline")
		}

		st := &model.Stage{
			PipelineID:   p.ID,
			OrgID:        p.OrgID,
			Name:         strings.TrimSpace(req.Name),
			Color:        req.Color,
			StageType:    req.StageType,
			MapsToStatus: req.MapsToStatus,
			WIPLimit:     req.WIPLimit,
			CreatedBy:    a.UserID,
		}
		if st.Color == "" {
			st.Color = model.DefaultStageColor
		}
		if st.StageType == "" {
			st.StageType = model.StageTypeOpen
		}
		if req.Order != nil {
			st.Order = *req.Order
		} else {
			st.Order = nextStageOrder(p.Stages)
		}
		if err := validateStage(st); err != nil {
			return err
		}

		created, err = tx.CreateStage(ctx, st)
		if errors.Is(err, store.ErrConflict) {
			return invalid("name", errStageNameTaken)
		}
		if err != nil {
			return fmt.Errorf("create stage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStageView(created), nil
}

func (s *caseService) UpdateStage(ctx context.Context, a model.Actor, id uuid.UUID, req UpdateStageRequest) (*StageView, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourceStage, authorize.ActionUpdate); err != nil {
		return nil, err
	}

	var updated *model.Stage
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		st, err := s.loadStage(ctx, tx, a.OrgID, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			st.Name = strings.TrimSpace(*req.Name)
		}
		if req.Order != nil {
			st.Order = *req.Order
		}
		if req.Color != nil {
			st.Color = *req.Color
		}
		if req.StageType != nil {
			st.StageType = *req.StageType
		}
		if req.MapsToStatus.Set {
			st.MapsToStatus = req.MapsToStatus.Value
		}
		if req.WIPLimit.Set {
			st.WIPLimit = req.WIPLimit.Value
		}
		if err := validateStage(st); err != nil {
			return err
		}

		err = tx.UpdateStage(ctx, st)
		if errors.Is(err, store.ErrConflict) {
			return invalid("name", errStageNameTaken)
		}
		if err != nil {
			return fmt.Errorf("update stage: %w", err)
		}
		updated, err = s.loadStage(ctx, tx, a.OrgID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toStageView(updated), nil
}

// DeleteStage removes the stage. It is refused while any case sits in it.
func (s *caseService) DeleteStage(ctx context.Context, a model.Actor, id uuid.UUID) error {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourceStage, authorize.ActionDelete); err != nil {
		return err
	}

	return s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		st, err := s.loadStage(ctx, tx, a.OrgID, id)
		if err != nil {
			return err
		}
		n, err := tx.CountCases(ctx, model.CaseQuery{OrgID: a.OrgID, StageID: &st.ID})
		if err != nil {
			return fmt.Errorf("count stage cases: %w", err)
		}
		if n > 0 {
			return linkedCases("stage", n)
		}
		if err := tx.DeleteStage(ctx, a.OrgID, st.ID); err != nil {
			return fmt.Errorf("delete stage: %w", err)
		}
		return nil
	})
}

// ReorderStages sets each listed stage's order to its index in the list.
// Every id must name a distinct stage of the pipeline or nothing changes.
func (s *caseService) ReorderStages(ctx context.Context, a model.Actor, pipelineID uuid.UUID, req ReorderStagesRequest) ([]*StageView, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourceStage, authorize.ActionUpdate); err != nil {
		return nil, err
	}
	if len(req.StageIDs) == 0 {
		return nil, invalid("stage_ids", "this field is required")
	}

	var stages []*model.Stage
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		p, err := s.loadPipeline(ctx, tx, a.OrgID, pipelineID, false)
		if err != nil {
			return err
		}

		known := make(map[uuid.UUID]bool, len(p.Stages))
		for _, st := range p.Stages {
			known[st.ID] = true
		}
		orders := make(map[uuid.UUID]int, len(req.StageIDs))
		for i, id := range req.StageIDs {
			if _, dup := orders[id]; dup {
				return invalid("stage_ids", fmt.Sprintf("stage %s is listed more than once", id))
			}
			if !known[id] {
				return invalid("stage_ids", fmt.Sprintf("stage %s does not belong to this pipeline", id))
			}
			orders[id] = i
		}

		if err := tx.SetStageOrders(ctx, orders); err != nil {
			return fmt.Errorf("set stage orders: %w", err)
		}
		stages, err = tx.ListStages(ctx, a.OrgID, p.ID)
		if err != nil {
			return fmt.Errorf("list stages: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStageViews(stages), nil
}

func (s *caseService) loadStage(ctx context.Context, st store.Store, orgID, id uuid.UUID) (*model.Stage, error) {
	out, err := st.GetStage(ctx, orgID, id, false)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrStageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get stage: %w", err)
	}
	return out, nil
}

func nextStageOrder(stages []*model.Stage) int {
	next := 0
	for _, st := range stages {
		if st.Order >= next {
			next = st.Order + 1
		}
	}
	return next
}

func validateStage(st *model.Stage) error {
	errs := fieldErrors{}
	switch {
	case st.Name == "":
		errs.add("name", "this field is required")
	case len(st.Name) > 100:
		errs.add("name", "must be at most 100 characters")
	}
	if st.Order < 0 {
		errs.add("order", "must not be negative")
	}
	if !model.ColorPattern.MatchString(st.Color) {
		errs.add("color", "must be a #RRGGBB color")
	}
	if !model.IsStageType(st.StageType) {
		errs.add("stage_type", fmt.Sprintf("%q is not a valid stage type", st.StageType))
	}
	if st.MapsToStatus != nil && !model.IsStatus(*st.MapsToStatus) {
		errs.add("maps_to_status", fmt.Sprintf("%q is not a valid status", *st.MapsToStatus))
	}
	if st.WIPLimit != nil && *st.WIPLimit < 1 {
		errs.add("wip_limit", "must be at least 1")
	}
	return errs.err()
}
