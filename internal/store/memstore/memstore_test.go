package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

func seedCases(t *testing.T, s *Store, org uuid.UUID, orders ...string) []*model.Case {
	t.Helper()
	out := make([]*model.Case, 0, len(orders))
	for _, o := range orders {
		c, err := s.CreateCase(context.Background(), &model.Case{
			OrgID:       org,
			Name:        "case " + o,
			Status:      model.StatusNew,
			KanbanOrder: decimal.RequireFromString(o),
		})
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := s.PutOrganization(&model.Organization{Name: "Acme"}).ID
	cs := seedCases(t, s, org, "1000")

	boom := errors.New("boom")
	err := s.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		c := cs[0].Clone()
		c.Status = model.StatusClosed
		require.NoError(t, tx.SaveCasePosition(ctx, c))

		// Nested transactions join the outer one.
		return tx.InTx(ctx, func(ctx context.Context, tx store.Store) error {
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetCase(ctx, org, cs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, got.Status)
}

func TestNeighbours(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := s.PutOrganization(&model.Organization{Name: "Acme"}).ID
	cs := seedCases(t, s, org, "1000", "2000", "3000")
	col := model.StatusColumn(model.StatusNew)

	after, err := s.NeighborAfter(ctx, org, col, decimal.NewFromInt(1000), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, cs[1].ID, after.ID)

	after, err = s.NeighborAfter(ctx, org, col, decimal.NewFromInt(1000), cs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, cs[2].ID, after.ID)

	before, err := s.NeighborBefore(ctx, org, col, decimal.NewFromInt(3000), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, cs[1].ID, before.ID)

	before, err = s.NeighborBefore(ctx, org, col, decimal.NewFromInt(1000), uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, before)

	last, err := s.LastInColumn(ctx, org, col, cs[2].ID)
	require.NoError(t, err)
	assert.Equal(t, cs[1].ID, last.ID)

	last, err = s.LastInColumn(ctx, org, model.StatusColumn(model.StatusClosed), uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, last)

	// Other tenants are invisible.
	other := s.PutOrganization(&model.Organization{Name: "Other"}).ID
	last, err = s.LastInColumn(ctx, other, col, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestQueryCasesOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := s.PutOrganization(&model.Organization{Name: "Acme"}).ID
	cs := seedCases(t, s, org, "0", "0", "-5")

	got, err := s.QueryCases(ctx, model.CaseQuery{OrgID: org, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, cs[2].ID, got[0].ID)
	assert.Equal(t, cs[1].ID, got[1].ID, "ties list the newest case first")

	n, err := s.CountCases(ctx, model.CaseQuery{OrgID: org})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCreateStageUniqueName(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := s.PutOrganization(&model.Organization{Name: "Acme"}).ID
	p, err := s.CreatePipeline(ctx, &model.Pipeline{OrgID: org, Name: "Support", IsActive: true}, nil)
	require.NoError(t, err)

	_, err = s.CreateStage(ctx, &model.Stage{PipelineID: p.ID, OrgID: org, Name: "Todo"})
	require.NoError(t, err)
	_, err = s.CreateStage(ctx, &model.Stage{PipelineID: p.ID, OrgID: org, Name: "Todo"})
	assert.ErrorIs(t, err, store.ErrConflict)
}
