package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/internal/store/memstore"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	ms := memstore.New()
	orgID, userID := uuid.New(), uuid.New()

	require.NoError(t, SeedDemo(ctx, ms, config.DemoConfig{
		Enabled: true,
		OrgID:   orgID.String(),
		UserID:  userID.String(),
	}))

	m, err := ms.GetMember(ctx, orgID, userID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, m.Role)
	assert.True(t, m.IsActive)

	ps, err := ms.ListPipelines(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Len(t, ps[0].Stages, 5)
}

func TestSeedDemoRejectsBadID(t *testing.T) {
	err := SeedDemo(context.Background(), memstore.New(), config.DemoConfig{OrgID: "nope"})
	require.Error(t, err)
}

func TestMoveWorkerCompactsDeepOrders(t *testing.T) {
	ctx := context.Background()
	ms := memstore.New()
	org := ms.PutOrganization(&model.Organization{Name: "acme", IsActive: true})
	user := ms.PutUser(&model.User{Email: "u@acme.test"})

	deep := decimal.RequireFromString("0.0000000000001")
	first, err := ms.CreateCase(ctx, &model.Case{
		OrgID: org.ID, Name: "first", Status: model.StatusNew,
		Priority: model.PriorityNormal, CaseType: model.CaseTypeQuestion,
		KanbanOrder: deep, CreatedBy: user.ID,
	})
	require.NoError(t, err)
	second, err := ms.CreateCase(ctx, &model.Case{
		OrgID: org.ID, Name: "second", Status: model.StatusNew,
		Priority: model.PriorityNormal, CaseType: model.CaseTypeQuestion,
		KanbanOrder: decimal.NewFromInt(5), CreatedBy: user.ID,
	})
	require.NoError(t, err)

	svc := cases.New(ms, cases.NewPolicy(nil), nil, config.KanbanConfig{OrderStep: 1000})
	w := moveWorker{svc: svc, scale: config.DefaultCompactScale}

	w.handle(ctx, "crm.case.moved."+first.ID.String(), cases.CaseMoved{
		CaseID:      first.ID,
		OrgID:       org.ID,
		ToStatus:    model.StatusNew,
		KanbanOrder: deep,
	})

	got, err := ms.GetCase(ctx, org.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, got.KanbanOrder.Equal(decimal.NewFromInt(1000)), got.KanbanOrder.String())

	got, err = ms.GetCase(ctx, org.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, got.KanbanOrder.Equal(decimal.NewFromInt(2000)), got.KanbanOrder.String())
}

func TestMoveWorkerLeavesShallowOrders(t *testing.T) {
	ctx := context.Background()
	ms := memstore.New()
	org := ms.PutOrganization(&model.Organization{Name: "acme", IsActive: true})

	c, err := ms.CreateCase(ctx, &model.Case{
		OrgID: org.ID, Name: "only", Status: model.StatusNew,
		Priority: model.PriorityNormal, CaseType: model.CaseTypeQuestion,
		KanbanOrder: decimal.RequireFromString("1500.5"),
	})
	require.NoError(t, err)

	svc := cases.New(ms, cases.NewPolicy(nil), nil, config.KanbanConfig{})
	moveWorker{svc: svc, scale: config.DefaultCompactScale}.handle(ctx, "", cases.CaseMoved{
		CaseID: c.ID, OrgID: org.ID, ToStatus: model.StatusNew, KanbanOrder: c.KanbanOrder,
	})

	got, err := ms.GetCase(ctx, org.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "1500.5", got.KanbanOrder.String())
}

func TestMoveWorkerStopsAfterShutdown(t *testing.T) {
	ms := memstore.New()
	org := ms.PutOrganization(&model.Organization{Name: "acme", IsActive: true})

	deep := decimal.RequireFromString("0.0000000000001")
	c, err := ms.CreateCase(context.Background(), &model.Case{
		OrgID: org.ID, Name: "deep", Status: model.StatusNew,
		Priority: model.PriorityNormal, CaseType: model.CaseTypeQuestion,
		KanbanOrder: deep,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := cases.New(ms, cases.NewPolicy(nil), nil, config.KanbanConfig{OrderStep: 1000})
	moveWorker{svc: svc, scale: config.DefaultCompactScale}.handle(ctx, "", cases.CaseMoved{
		CaseID: c.ID, OrgID: org.ID, ToStatus: model.StatusNew, KanbanOrder: deep,
	})

	got, err := ms.GetCase(context.Background(), org.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, got.KanbanOrder.Equal(deep), got.KanbanOrder.String())
}
