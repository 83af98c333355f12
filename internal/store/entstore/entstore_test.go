package entstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/repo/enttest"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

// CRM_TEST_DATABASE_DSN points at a throwaway postgres database, e.g.
// "host=localhost port=5432 user=crm password=crm dbname=crm_test sslmode=disable".
const dsnEnv = "CRM_TEST_DATABASE_DSN"

// newStore migrates the schema and returns a store. Every test works in a
// fresh organization so runs do not see each other's rows.
func newStore(t *testing.T) (*Store, uuid.UUID) {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", dsnEnv)
	}
	client := enttest.Open(t, dialect.Postgres, dsn)
	t.Cleanup(func() { client.Close() })

	org, err := client.Organization.Create().SetName("Acme").Save(context.Background())
	require.NoError(t, err)
	return New(client), org.ID
}

func newUser(t *testing.T, s *Store) uuid.UUID {
	t.Helper()
	u, err := s.client.User.Create().
		SetEmail(uuid.NewString() + "@acme.test").
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

func newCase(t *testing.T, s *Store, c *model.Case) *model.Case {
	t.Helper()
	if c.Name == "" {
		c.Name = "case " + c.KanbanOrder.String()
	}
	if c.Status == "" {
		c.Status = model.StatusNew
	}
	c.Priority = model.PriorityNormal
	c.CaseType = model.CaseTypeQuestion
	out, err := s.CreateCase(context.Background(), c)
	require.NoError(t, err)
	// created_at breaks order ties, keep it strictly increasing.
	time.Sleep(2 * time.Millisecond)
	return out
}

func seedCases(t *testing.T, s *Store, org, creator uuid.UUID, orders ...string) []*model.Case {
	t.Helper()
	out := make([]*model.Case, 0, len(orders))
	for _, o := range orders {
		out = append(out, newCase(t, s, &model.Case{
			OrgID:       org,
			KanbanOrder: decimal.RequireFromString(o),
			CreatedBy:   creator,
		}))
	}
	return out
}

func newPipeline(t *testing.T, s *Store, org, creator uuid.UUID, stages ...string) *model.Pipeline {
	t.Helper()
	var specs []*model.Stage
	for i, name := range stages {
		specs = append(specs, &model.Stage{
			Name:      name,
			Order:     i,
			Color:     model.DefaultStageColor,
			StageType: model.StageTypeOpen,
			CreatedBy: creator,
		})
	}
	p, err := s.CreatePipeline(context.Background(), &model.Pipeline{
		OrgID: org, Name: "Support", IsActive: true, CreatedBy: creator,
	}, specs)
	require.NoError(t, err)
	return p
}

func TestNeighbours(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)
	user := newUser(t, s)
	cs := seedCases(t, s, org, user, "1000", "1000.0000000000001", "3000")
	col := model.StatusColumn(model.StatusNew)

	after, err := s.NeighborAfter(ctx, org, col, decimal.NewFromInt(1000), uuid.Nil)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, cs[1].ID, after.ID, "numeric comparison keeps deep fractions")
	assert.True(t, after.KanbanOrder.Equal(cs[1].KanbanOrder))

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

	last, err = s.LastInColumn(ctx, uuid.New(), col, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, last, "other tenants are invisible")
}

func TestQueryCasesOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)
	user := newUser(t, s)
	cs := seedCases(t, s, org, user, "0", "0", "-5")

	got, err := s.QueryCases(ctx, model.CaseQuery{OrgID: org, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, cs[2].ID, got[0].ID)
	assert.Equal(t, cs[1].ID, got[1].ID, "ties list the newest case first")

	n, err := s.CountCases(ctx, model.CaseQuery{OrgID: org})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAssigneesAndTagsAreShared(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)
	creator, alice, bob := newUser(t, s), newUser(t, s), newUser(t, s)
	tag, err := s.client.Tag.Create().SetOrganizationID(org).SetName("vip").Save(ctx)
	require.NoError(t, err)

	first := newCase(t, s, &model.Case{
		OrgID: org, CreatedBy: creator, KanbanOrder: decimal.NewFromInt(1000),
		Assignees: []uuid.UUID{alice, bob}, Tags: []uuid.UUID{tag.ID},
	})
	second := newCase(t, s, &model.Case{
		OrgID: org, CreatedBy: creator, KanbanOrder: decimal.NewFromInt(2000),
		Assignees: []uuid.UUID{alice}, Tags: []uuid.UUID{tag.ID},
	})
	newCase(t, s, &model.Case{OrgID: org, CreatedBy: creator, KanbanOrder: decimal.NewFromInt(3000)})

	got, err := s.GetCase(ctx, org, first.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{alice, bob}, got.Assignees)
	assert.Equal(t, []uuid.UUID{tag.ID}, got.Tags)

	ids := func(cs []*model.Case) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	cs, err := s.QueryCases(ctx, model.CaseQuery{OrgID: org, Filter: model.CaseFilter{AssignedTo: &alice}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids(cs))

	cs, err = s.QueryCases(ctx, model.CaseQuery{OrgID: org, Filter: model.CaseFilter{TagID: &tag.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids(cs))

	cs, err = s.QueryCases(ctx, model.CaseQuery{OrgID: org, VisibleTo: &bob})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID}, ids(cs))

	n, err := s.CountCases(ctx, model.CaseQuery{OrgID: org, VisibleTo: &creator})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStageColumns(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)
	user := newUser(t, s)
	p := newPipeline(t, s, org, user, "Todo", "Doing")
	require.Len(t, p.Stages, 2)
	todo, doing := p.Stages[0], p.Stages[1]

	inTodo := newCase(t, s, &model.Case{OrgID: org, CreatedBy: user, StageID: &todo.ID, KanbanOrder: decimal.NewFromInt(1000)})
	newCase(t, s, &model.Case{OrgID: org, CreatedBy: user, StageID: &doing.ID, KanbanOrder: decimal.NewFromInt(1000)})
	loose := newCase(t, s, &model.Case{OrgID: org, CreatedBy: user, KanbanOrder: decimal.NewFromInt(1000)})

	col := model.StageColumn(todo.ID)
	cs, err := s.QueryCases(ctx, model.CaseQuery{OrgID: org, Column: &col})
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, inTodo.ID, cs[0].ID)

	status := model.StatusColumn(model.StatusNew)
	cs, err = s.QueryCases(ctx, model.CaseQuery{OrgID: org, Column: &status})
	require.NoError(t, err)
	require.Len(t, cs, 1, "status columns hold only cases without a stage")
	assert.Equal(t, loose.ID, cs[0].ID)

	n, err := s.CountPipelineCases(ctx, org, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountCases(ctx, model.CaseQuery{OrgID: org, PipelineID: &p.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.CreateStage(ctx, &model.Stage{
		PipelineID: p.ID, OrgID: org, Name: "Todo",
		Color: model.DefaultStageColor, StageType: model.StageTypeOpen, CreatedBy: user,
	})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestInTxLocksStageAndRollsBack(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)
	user := newUser(t, s)
	p := newPipeline(t, s, org, user, "Todo")
	c := newCase(t, s, &model.Case{OrgID: org, CreatedBy: user, KanbanOrder: decimal.NewFromInt(1000)})

	boom := errors.New("boom")
	err := s.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		st, err := tx.GetStage(ctx, org, p.Stages[0].ID, true)
		require.NoError(t, err)

		moved := c.Clone()
		moved.StageID = &st.ID
		moved.Status = model.StatusAssigned
		moved.KanbanOrder = decimal.RequireFromString("1500.5")
		require.NoError(t, tx.SaveCasePosition(ctx, moved))

		// Nested transactions join the outer one.
		return tx.InTx(ctx, func(ctx context.Context, tx store.Store) error {
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetCase(ctx, org, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StageID)
	assert.Equal(t, model.StatusNew, got.Status)
	assert.True(t, got.KanbanOrder.Equal(decimal.NewFromInt(1000)))

	err = s.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		return tx.SetKanbanOrders(ctx, map[uuid.UUID]decimal.Decimal{c.ID: decimal.RequireFromString("0.25")})
	})
	require.NoError(t, err)
	got, err = s.GetCase(ctx, org, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.25", got.KanbanOrder.String())
}

func TestMissingRowsMapToNotFound(t *testing.T) {
	ctx := context.Background()
	s, org := newStore(t)

	_, err := s.GetCase(ctx, org, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetStage(ctx, org, uuid.New(), false)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetPipeline(ctx, org, uuid.New(), false)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteStage(ctx, org, uuid.New()), store.ErrNotFound)
}
