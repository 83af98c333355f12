package cases

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	assert.Contains(t, verr.Fields, field)
}

func TestCreateStageDefaults(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	st, err := f.svc.CreateStage(f.ctx, f.admin, p.ID, CreateStageRequest{Name: "Escalated"})
	require.NoError(t, err)

	assert.Equal(t, f.org, st.OrgID)
	assert.Equal(t, p.ID, st.PipelineID)
	assert.Equal(t, 5, st.Order)
	assert.Equal(t, model.DefaultStageColor, st.Color)
	assert.Equal(t, model.StageTypeOpen, st.StageType)
	assert.Nil(t, st.MapsToStatus)
	assert.Nil(t, st.WIPLimit)
}

func TestCreateStageExplicitFields(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)

	st, err := f.svc.CreateStage(f.ctx, f.admin, p.ID, CreateStageRequest{
		OrgID:        &f.org,
		Name:         "Triage",
		Order:        ptr(7),
		Color:        "#abcdef",
		StageType:    model.StageTypeInProgress,
		MapsToStatus: ptr(model.StatusPending),
		WIPLimit:     ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, st.Order)
	assert.Equal(t, "#abcdef", st.Color)
	assert.Equal(t, model.StatusPending, *st.MapsToStatus)
	assert.Equal(t, 3, *st.WIPLimit)
}

func TestCreateStageValidation(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	otherOrg := uuid.New()

	tests := []struct {
		name  string
		req   CreateStageRequest
		field string
	}{
		{"duplicate name", CreateStageRequest{Name: "New"}, "name"},
		{"missing name", CreateStageRequest{Name: " "}, "name"},
		{"bad color", CreateStageRequest{Name: "A", Color: "red"}, "color"},
		{"bad stage type", CreateStageRequest{Name: "B", StageType: "done"}, "stage_type"},
		{"bad status", CreateStageRequest{Name: "C", MapsToStatus: ptr("Gone")}, "maps_to_status"},
		{"zero wip limit", CreateStageRequest{Name: "D", WIPLimit: ptr(0)}, "wip_limit"},
		{"negative order", CreateStageRequest{Name: "E", Order: ptr(-1)}, "order"},
		{"foreign org", CreateStageRequest{Name: "F", OrgID: &otherOrg}, "org_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateStage(f.ctx, f.admin, p.ID, tt.req)
			requireFieldError(t, err, tt.field)
		})
	}

	got, err := f.svc.GetPipeline(f.ctx, f.admin, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Stages, 5)
}

func TestUpdateStage(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	id := p.Stages[1].ID

	st, err := f.svc.UpdateStage(f.ctx, f.admin, id, UpdateStageRequest{
		Name:     ptr("Queued"),
		Color:    ptr("#000000"),
		WIPLimit: model.Some(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Queued", st.Name)
	assert.Equal(t, "#000000", st.Color)
	assert.Equal(t, 4, *st.WIPLimit)
	assert.Equal(t, model.StatusAssigned, *st.MapsToStatus)

	st, err = f.svc.UpdateStage(f.ctx, f.admin, id, UpdateStageRequest{
		WIPLimit:     model.Null[int](),
		MapsToStatus: model.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, st.WIPLimit)
	assert.Nil(t, st.MapsToStatus)
	assert.Equal(t, "Queued", st.Name)

	_, err = f.svc.UpdateStage(f.ctx, f.admin, id, UpdateStageRequest{Name: ptr("Resolved")})
	requireFieldError(t, err, "name")

	_, err = f.svc.UpdateStage(f.ctx, f.user, id, UpdateStageRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrAdminRequired)

	_, err = f.svc.UpdateStage(f.ctx, f.admin, uuid.New(), UpdateStageRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrStageNotFound)
}

func TestDeleteStageGuard(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	busy := p.Stages[0].ID
	f.newCase(f.admin, "a", &busy)
	f.newCase(f.admin, "b", &busy)

	err := f.svc.DeleteStage(f.ctx, f.admin, busy)
	var rule *RuleError
	require.True(t, errors.As(err, &rule), "got %v", err)
	assert.Equal(t, 2, rule.Count)
	assert.Contains(t, rule.Msg, "2 case(s)")

	idle := p.Stages[4].ID
	require.NoError(t, f.svc.DeleteStage(f.ctx, f.admin, idle))
	assert.ErrorIs(t, f.svc.DeleteStage(f.ctx, f.admin, idle), ErrStageNotFound)

	got, err := f.svc.GetPipeline(f.ctx, f.admin, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Stages, 4)

	assert.ErrorIs(t, f.svc.DeleteStage(f.ctx, f.user, busy), ErrAdminRequired)
}

func TestReorderStages(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	ids := make([]uuid.UUID, 0, len(p.Stages))
	for i := len(p.Stages) - 1; i >= 0; i-- {
		ids = append(ids, p.Stages[i].ID)
	}

	stages, err := f.svc.ReorderStages(f.ctx, f.admin, p.ID, ReorderStagesRequest{StageIDs: ids})
	require.NoError(t, err)
	require.Len(t, stages, 5)
	for i, st := range stages {
		assert.Equal(t, ids[i], st.ID)
		assert.Equal(t, i, st.Order)
	}
	assert.Equal(t, "Rejected", stages[0].Name)
}

func TestReorderStagesAtomic(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	other := f.pipeline("Sales", true)

	tests := []struct {
		name string
		ids  []uuid.UUID
	}{
		{"unknown id", []uuid.UUID{p.Stages[4].ID, uuid.New(), p.Stages[0].ID}},
		{"stage of another pipeline", []uuid.UUID{p.Stages[4].ID, other.Stages[0].ID}},
		{"duplicate id", []uuid.UUID{p.Stages[4].ID, p.Stages[4].ID}},
		{"empty list", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ReorderStages(f.ctx, f.admin, p.ID, ReorderStagesRequest{StageIDs: tt.ids})
			requireFieldError(t, err, "stage_ids")

			got, err := f.svc.GetPipeline(f.ctx, f.admin, p.ID)
			require.NoError(t, err)
			for i, st := range got.Stages {
				assert.Equal(t, p.Stages[i].ID, st.ID)
				assert.Equal(t, i, st.Order)
			}
		})
	}

	_, err := f.svc.ReorderStages(f.ctx, f.user, p.ID, ReorderStagesRequest{StageIDs: []uuid.UUID{p.Stages[0].ID}})
	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestReorderStagesSubset(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	a := f.stage(p.ID, "A", nil)
	b := f.stage(p.ID, "B", nil)
	c := f.stage(p.ID, "C", nil)

	stages, err := f.svc.ReorderStages(f.ctx, f.admin, p.ID, ReorderStagesRequest{StageIDs: []uuid.UUID{c.ID, b.ID}})
	require.NoError(t, err)

	orders := map[uuid.UUID]int{}
	for _, st := range stages {
		orders[st.ID] = st.Order
	}
	assert.Equal(t, map[uuid.UUID]int{c.ID: 0, b.ID: 1, a.ID: 0}, orders)
}
