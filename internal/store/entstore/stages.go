package entstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/repo"
	entstage "github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

// GetStage loads a stage. With forUpdate inside a transaction the row is
// locked until commit.
func (s *Store) GetStage(ctx context.Context, orgID, id uuid.UUID, forUpdate bool) (*model.Stage, error) {
	q := s.client.CaseStage.Query().
		Where(entstage.ID(id), entstage.OrganizationID(orgID))
	if forUpdate && s.inTx {
		q = q.ForUpdate()
	}
	st, err := q.Only(ctx)
	if err != nil {
		return nil, wrap("get stage", err)
	}
	return toStage(st), nil
}

func (s *Store) ListStages(ctx context.Context, orgID, pipelineID uuid.UUID) ([]*model.Stage, error) {
	ss, err := s.client.CaseStage.Query().
		Where(entstage.PipelineID(pipelineID), entstage.OrganizationID(orgID)).
		Order(entstage.ByPosition(), entstage.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, wrap("list stages", err)
	}
	out := make([]*model.Stage, 0, len(ss))
	for _, st := range ss {
		out = append(out, toStage(st))
	}
	return out, nil
}

func (s *Store) stageCreate(st *model.Stage) *repo.CaseStageCreate {
	return s.client.CaseStage.Create().
		SetPipelineID(st.PipelineID).
		SetOrganizationID(st.OrgID).
		SetName(st.Name).
		SetPosition(st.Order).
		SetColor(st.Color).
		SetStageType(entstage.StageType(st.StageType)).
		SetNillableMapsToStatus(st.MapsToStatus).
		SetNillableWipLimit(st.WIPLimit).
		SetCreatedBy(st.CreatedBy)
}

func (s *Store) CreateStage(ctx context.Context, st *model.Stage) (*model.Stage, error) {
	created, err := s.stageCreate(st).Save(ctx)
	if err != nil {
		return nil, wrap("create stage", err)
	}
	return toStage(created), nil
}

func (s *Store) UpdateStage(ctx context.Context, st *model.Stage) error {
	u := s.client.CaseStage.Update().
		Where(entstage.ID(st.ID), entstage.OrganizationID(st.OrgID)).
		SetName(st.Name).
		SetPosition(st.Order).
		SetColor(st.Color).
		SetStageType(entstage.StageType(st.StageType))
	if st.MapsToStatus != nil {
		u.SetMapsToStatus(*st.MapsToStatus)
	} else {
		u.ClearMapsToStatus()
	}
	if st.WIPLimit != nil {
		u.SetWipLimit(*st.WIPLimit)
	} else {
		u.ClearWipLimit()
	}

	n, err := u.Save(ctx)
	if err != nil {
		return wrap("update stage", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteStage(ctx context.Context, orgID, id uuid.UUID) error {
	n, err := s.client.CaseStage.Delete().
		Where(entstage.ID(id), entstage.OrganizationID(orgID)).
		Exec(ctx)
	if err != nil {
		return wrap("delete stage", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetStageOrders(ctx context.Context, orders map[uuid.UUID]int) error {
	for id, order := range orders {
		if err := s.client.CaseStage.UpdateOneID(id).SetPosition(order).Exec(ctx); err != nil {
			return wrap("set stage order", err)
		}
	}
	return nil
}

func toStage(st *repo.CaseStage) *model.Stage {
	return &model.Stage{
		ID:           st.ID,
		PipelineID:   st.PipelineID,
		OrgID:        st.OrganizationID,
		Name:         st.Name,
		Order:        st.Position,
		Color:        st.Color,
		StageType:    string(st.StageType),
		MapsToStatus: st.MapsToStatus,
		WIPLimit:     st.WipLimit,
		CreatedBy:    st.CreatedBy,
		CreatedAt:    st.CreatedAt,
		UpdatedAt:    st.UpdatedAt,
	}
}
