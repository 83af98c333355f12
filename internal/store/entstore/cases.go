package entstore

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/repo"
	entstage "github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/predicate"
	entcase "github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	enttag "github.com/Alijeyrad/crm_backend/internal/repo/tag"
	entuser "github.com/Alijeyrad/crm_backend/internal/repo/user"
)

func (s *Store) GetCase(ctx context.Context, orgID, id uuid.UUID) (*model.Case, error) {
	c, err := s.client.SupportCase.Query().
		Where(entcase.ID(id), entcase.OrganizationID(orgID)).
		WithAssignees().
		WithTags().
		Only(ctx)
	if err != nil {
		return nil, wrap("get case", err)
	}
	return toCase(c), nil
}

func (s *Store) CreateCase(ctx context.Context, c *model.Case) (*model.Case, error) {
	created, err := s.client.SupportCase.Create().
		SetOrganizationID(c.OrgID).
		SetName(c.Name).
		SetDescription(c.Description).
		SetStatus(entcase.Status(c.Status)).
		SetPriority(entcase.Priority(c.Priority)).
		SetCaseType(entcase.CaseType(c.CaseType)).
		SetNillableAccountID(c.AccountID).
		SetNillableStageID(c.StageID).
		SetKanbanOrder(c.KanbanOrder).
		SetCreatedBy(c.CreatedBy).
		AddAssigneeIDs(c.Assignees...).
		AddTagIDs(c.Tags...).
		Save(ctx)
	if err != nil {
		return nil, wrap("create case", err)
	}
	return s.GetCase(ctx, c.OrgID, created.ID)
}

func (s *Store) QueryCases(ctx context.Context, q model.CaseQuery) ([]*model.Case, error) {
	query := s.client.SupportCase.Query().
		Where(casePredicates(q)...).
		WithAssignees().
		WithTags().
		Order(boardOrder(false)...)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	cs, err := query.All(ctx)
	if err != nil {
		return nil, wrap("query cases", err)
	}
	out := make([]*model.Case, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCase(c))
	}
	return out, nil
}

func (s *Store) CountCases(ctx context.Context, q model.CaseQuery) (int, error) {
	n, err := s.client.SupportCase.Query().Where(casePredicates(q)...).Count(ctx)
	if err != nil {
		return 0, wrap("count cases", err)
	}
	return n, nil
}

func (s *Store) NeighborAfter(ctx context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error) {
	return s.firstInColumn(ctx, orgID, col, exclude, false,
		predicate.SupportCase(sql.FieldGT(entcase.FieldKanbanOrder, order)))
}

func (s *Store) NeighborBefore(ctx context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error) {
	return s.firstInColumn(ctx, orgID, col, exclude, true,
		predicate.SupportCase(sql.FieldLT(entcase.FieldKanbanOrder, order)))
}

func (s *Store) LastInColumn(ctx context.Context, orgID uuid.UUID, col model.Column, exclude uuid.UUID) (*model.Case, error) {
	return s.firstInColumn(ctx, orgID, col, exclude, true)
}

// firstInColumn returns the first case of col in board order, or in reverse
// board order when reverse is set. A missing case is not an error.
func (s *Store) firstInColumn(ctx context.Context, orgID uuid.UUID, col model.Column, exclude uuid.UUID, reverse bool, extra ...predicate.SupportCase) (*model.Case, error) {
	ps := casePredicates(model.CaseQuery{OrgID: orgID, Column: &col, ExcludeID: &exclude})
	c, err := s.client.SupportCase.Query().
		Where(append(ps, extra...)...).
		Order(boardOrder(reverse)...).
		First(ctx)
	if repo.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find neighbor", err)
	}
	return toCase(c), nil
}

func (s *Store) SaveCasePosition(ctx context.Context, c *model.Case) error {
	u := s.client.SupportCase.UpdateOneID(c.ID).
		Where(entcase.OrganizationID(c.OrgID)).
		SetStatus(entcase.Status(c.Status)).
		SetKanbanOrder(c.KanbanOrder)
	if c.StageID != nil {
		u.SetStageID(*c.StageID)
	} else {
		u.ClearStageID()
	}

	saved, err := u.Save(ctx)
	if err != nil {
		return wrap("save case position", err)
	}
	c.UpdatedAt = saved.UpdatedAt
	return nil
}

func (s *Store) SetKanbanOrders(ctx context.Context, orders map[uuid.UUID]decimal.Decimal) error {
	for id, order := range orders {
		if err := s.client.SupportCase.UpdateOneID(id).SetKanbanOrder(order).Exec(ctx); err != nil {
			return wrap("set kanban order", err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Query building
// ---------------------------------------------------------------------------

// boardOrder sorts by kanban_order ascending, newest first on ties.
func boardOrder(reverse bool) []entcase.OrderOption {
	asc, desc := sql.OrderAsc(), sql.OrderDesc()
	if reverse {
		asc, desc = desc, asc
	}
	return []entcase.OrderOption{
		entcase.OrderOption(sql.OrderByField(entcase.FieldKanbanOrder, asc).ToFunc()),
		entcase.ByCreatedAt(desc),
		entcase.ByID(asc),
	}
}

func casePredicates(q model.CaseQuery) []predicate.SupportCase {
	ps := []predicate.SupportCase{entcase.OrganizationID(q.OrgID)}

	if q.ExcludeID != nil {
		ps = append(ps, entcase.IDNEQ(*q.ExcludeID))
	}
	if q.VisibleTo != nil {
		ps = append(ps, entcase.Or(
			entcase.CreatedBy(*q.VisibleTo),
			entcase.HasAssigneesWith(entuser.ID(*q.VisibleTo)),
		))
	}
	if q.PipelineID != nil {
		ps = append(ps, entcase.HasStageWith(entstage.PipelineID(*q.PipelineID)))
	}
	if q.Status != nil {
		ps = append(ps, entcase.StatusEQ(entcase.Status(*q.Status)))
	}
	if q.StageID != nil {
		ps = append(ps, entcase.StageID(*q.StageID))
	}
	if q.Column != nil {
		if id, ok := q.Column.Stage(); ok {
			ps = append(ps, entcase.StageID(id))
		} else {
			status, _ := q.Column.Status()
			ps = append(ps, entcase.StageIDIsNil(), entcase.StatusEQ(entcase.Status(status)))
		}
	}

	f := q.Filter
	if f.AssignedTo != nil {
		ps = append(ps, entcase.HasAssigneesWith(entuser.ID(*f.AssignedTo)))
	}
	if f.Priority != nil {
		ps = append(ps, entcase.PriorityEQ(entcase.Priority(*f.Priority)))
	}
	if f.CaseType != nil {
		ps = append(ps, entcase.CaseTypeEQ(entcase.CaseType(*f.CaseType)))
	}
	if f.Search != "" {
		ps = append(ps, entcase.Or(
			entcase.NameContainsFold(f.Search),
			entcase.DescriptionContainsFold(f.Search),
		))
	}
	if f.AccountID != nil {
		ps = append(ps, entcase.AccountID(*f.AccountID))
	}
	if f.TagID != nil {
		ps = append(ps, entcase.HasTagsWith(enttag.ID(*f.TagID)))
	}
	if f.CreatedFrom != nil {
		ps = append(ps, entcase.CreatedAtGTE(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		ps = append(ps, entcase.CreatedAtLTE(*f.CreatedTo))
	}
	return ps
}

func toCase(c *repo.SupportCase) *model.Case {
	out := &model.Case{
		ID:          c.ID,
		OrgID:       c.OrganizationID,
		Name:        c.Name,
		Description: c.Description,
		Status:      string(c.Status),
		Priority:    string(c.Priority),
		CaseType:    string(c.CaseType),
		AccountID:   c.AccountID,
		StageID:     c.StageID,
		KanbanOrder: c.KanbanOrder,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, u := range c.Edges.Assignees {
		out.Assignees = append(out.Assignees, u.ID)
	}
	for _, t := range c.Edges.Tags {
		out.Tags = append(out.Tags, t.ID)
	}
	return out
}
