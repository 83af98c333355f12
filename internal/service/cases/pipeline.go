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

func (s *caseService) ListPipelines(ctx context.Context, a model.Actor) ([]*PipelineView, error) {
	if err := s.policy.Require(ctx, a, authorize.ResourcePipeline, authorize.ActionRead, ErrPermissionDenied); err != nil {
		return nil, err
	}
	ps, err := s.st.ListPipelines(ctx, a.OrgID)
	if err != nil {
		return nil, fmt.Errorf("list pipelines: %w", err)
	}
	out := make([]*PipelineView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPipelineView(p))
	}
	return out, nil
}

func (s *caseService) GetPipeline(ctx context.Context, a model.Actor, id uuid.UUID) (*PipelineView, error) {
	if err := s.policy.Require(ctx, a, authorize.ResourcePipeline, authorize.ActionRead, ErrPermissionDenied); err != nil {
		return nil, err
	}
	p, err := s.loadPipeline(ctx, s.st, a.OrgID, id, true)
	if err != nil {
		return nil, err
	}
	return toPipelineView(p), nil
}

func (s *caseService) CreatePipeline(ctx context.Context, a model.Actor, req CreatePipelineRequest) (*PipelineView, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourcePipeline, authorize.ActionCreate); err != nil {
		return nil, err
	}
	name, err := pipelineName(req.Name)
	if err != nil {
		return nil, err
	}

	p := &model.Pipeline{
		OrgID:     a.OrgID,
		Name:      name,
		IsActive:  true,
		CreatedBy: a.UserID,
	}
	var stages []*model.Stage
	if req.CreateDefaultStages {
		stages = model.DefaultStages(p)
	}

	var created *model.Pipeline
	err = s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		var err error
		created, err = tx.CreatePipeline(ctx, p, stages)
		if err != nil {
			return fmt.Errorf("create pipeline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPipelineView(created), nil
}

func (s *caseService) UpdatePipeline(ctx context.Context, a model.Actor, id uuid.UUID, req UpdatePipelineRequest) (*PipelineView, error) {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourcePipeline, authorize.ActionUpdate); err != nil {
		return nil, err
	}

	var updated *model.Pipeline
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		// Inactive pipelines stay editable so they can be reactivated.
		p, err := s.loadPipeline(ctx, tx, a.OrgID, id, false)
		if err != nil {
			return err
		}
		if req.Name != nil {
			if p.Name, err = pipelineName(*req.Name); err != nil {
				return err
			}
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		if err := tx.UpdatePipeline(ctx, p); err != nil {
			return fmt.Errorf("update pipeline: %w", err)
		}
		updated, err = s.loadPipeline(ctx, tx, a.OrgID, id, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPipelineView(updated), nil
}

// DeletePipeline deactivates the pipeline. It is refused while any case
// sits in one of its stages.
func (s *caseService) DeletePipeline(ctx context.Context, a model.Actor, id uuid.UUID) error {
	if err := s.policy.RequireAdmin(ctx, a, authorize.ResourcePipeline, authorize.ActionDelete); err != nil {
		return err
	}

	return s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		p, err := s.loadPipeline(ctx, tx, a.OrgID, id, true)
		if err != nil {
			return err
		}
		n, err := tx.CountPipelineCases(ctx, a.OrgID, p.ID)
		if err != nil {
			return fmt.Errorf("count pipeline cases: %w", err)
		}
		if n > 0 {
			return linkedCases("pipeline", n)
		}
		p.IsActive = false
		if err := tx.UpdatePipeline(ctx, p); err != nil {
			return fmt.Errorf("deactivate pipeline: %w", err)
		}
		return nil
	})
}

func (s *caseService) loadPipeline(ctx context.Context, st store.Store, orgID, id uuid.UUID, activeOnly bool) (*model.Pipeline, error) {
	p, err := st.GetPipeline(ctx, orgID, id, activeOnly)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPipelineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pipeline: %w", err)
	}
	return p, nil
}

func pipelineName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", invalid("name", "this field is required")
	case len(name) > 100:
		return "", invalid("name", "must be at most 100 characters")
	}
	return name, nil
}
