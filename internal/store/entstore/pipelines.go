package entstore

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/repo"
	entpipeline "github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	entstage "github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	entcase "github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

func withOrderedStages(q *repo.CaseStageQuery) {
	q.Order(entstage.ByPosition(), entstage.ByCreatedAt())
}

func (s *Store) ListPipelines(ctx context.Context, orgID uuid.UUID) ([]*model.Pipeline, error) {
	ps, err := s.client.CasePipeline.Query().
		Where(entpipeline.OrganizationID(orgID), entpipeline.IsActive(true)).
		WithStages(withOrderedStages).
		Order(entpipeline.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, wrap("list pipelines", err)
	}
	out := make([]*model.Pipeline, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPipeline(p))
	}
	return out, nil
}

func (s *Store) GetPipeline(ctx context.Context, orgID, id uuid.UUID, activeOnly bool) (*model.Pipeline, error) {
	q := s.client.CasePipeline.Query().
		Where(entpipeline.ID(id), entpipeline.OrganizationID(orgID))
	if activeOnly {
		q = q.Where(entpipeline.IsActive(true))
	}
	p, err := q.WithStages(withOrderedStages).Only(ctx)
	if err != nil {
		return nil, wrap("get pipeline", err)
	}
	return toPipeline(p), nil
}

func (s *Store) CreatePipeline(ctx context.Context, p *model.Pipeline, stages []*model.Stage) (*model.Pipeline, error) {
	created, err := s.client.CasePipeline.Create().
		SetOrganizationID(p.OrgID).
		SetName(p.Name).
		SetIsActive(p.IsActive).
		SetCreatedBy(p.CreatedBy).
		Save(ctx)
	if err != nil {
		return nil, wrap("create pipeline", err)
	}

	if len(stages) > 0 {
		builders := make([]*repo.CaseStageCreate, 0, len(stages))
		for _, st := range stages {
			st := st.Clone()
			st.PipelineID = created.ID
			if st.OrgID == uuid.Nil {
				st.OrgID = created.OrganizationID
			}
			builders = append(builders, s.stageCreate(st))
		}
		if _, err := s.client.CaseStage.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, wrap("create default stages", err)
		}
	}

	return s.GetPipeline(ctx, p.OrgID, created.ID, false)
}

func (s *Store) UpdatePipeline(ctx context.Context, p *model.Pipeline) error {
	n, err := s.client.CasePipeline.Update().
		Where(entpipeline.ID(p.ID), entpipeline.OrganizationID(p.OrgID)).
		SetName(p.Name).
		SetIsActive(p.IsActive).
		Save(ctx)
	if err != nil {
		return wrap("update pipeline", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountPipelineCases(ctx context.Context, orgID, pipelineID uuid.UUID) (int, error) {
	n, err := s.client.SupportCase.Query().
		Where(
			entcase.OrganizationID(orgID),
			entcase.HasStageWith(entstage.PipelineID(pipelineID)),
		).
		Count(ctx)
	if err != nil {
		return 0, wrap("count pipeline cases", err)
	}
	return n, nil
}

func toPipeline(p *repo.CasePipeline) *model.Pipeline {
	out := &model.Pipeline{
		ID:        p.ID,
		OrgID:     p.OrganizationID,
		Name:      p.Name,
		IsActive:  p.IsActive,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Stages:    make([]*model.Stage, 0, len(p.Edges.Stages)),
	}
	for _, st := range p.Edges.Stages {
		out.Stages = append(out.Stages, toStage(st))
	}
	return out
}
