package cases

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestCreatePipelineWithDefaults(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.CreatePipeline(f.ctx, f.admin, CreatePipelineRequest{Name: "  Support  ", CreateDefaultStages: true})
	require.NoError(t, err)

	assert.Equal(t, "Support", p.Name)
	assert.True(t, p.IsActive)
	assert.Equal(t, f.admin.UserID, p.CreatedBy)

	want := []struct {
		name, color, stageType, status string
	}{
		{"New", "#3B82F6", model.StageTypeOpen, model.StatusNew},
		{"Assigned", "#8B5CF6", model.StageTypeOpen, model.StatusAssigned},
		{"In Progress", "#F59E0B", model.StageTypeInProgress, model.StatusPending},
		{"Resolved", "#10B981", model.StageTypeCompleted, model.StatusClosed},
		{"Rejected", "#EF4444", model.StageTypeRejected, model.StatusRejected},
	}
	require.Len(t, p.Stages, len(want))
	for i, w := range want {
		st := p.Stages[i]
		assert.Equal(t, w.name, st.Name)
		assert.Equal(t, i, st.Order)
		assert.Equal(t, w.color, st.Color)
		assert.Equal(t, w.stageType, st.StageType)
		assert.Equal(t, w.status, *st.MapsToStatus)
		assert.Nil(t, st.WIPLimit)
		assert.Equal(t, f.org, st.OrgID)
		assert.Equal(t, p.ID, st.PipelineID)
	}
}

func TestCreatePipelineWithoutDefaults(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Bare", false)
	assert.Empty(t, p.Stages)
}

func TestPipelineAdminOnly(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	_, err := f.svc.CreatePipeline(f.ctx, f.user, CreatePipelineRequest{Name: "Mine"})
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = f.svc.UpdatePipeline(f.ctx, f.user, p.ID, UpdatePipelineRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrAdminRequired)
	assert.ErrorIs(t, f.svc.DeletePipeline(f.ctx, f.user, p.ID), ErrAdminRequired)

	// Members may still read.
	got, err := f.svc.GetPipeline(f.ctx, f.user, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	list, err := f.svc.ListPipelines(f.ctx, f.user)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreatePipelineValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePipeline(f.ctx, f.admin, CreatePipelineRequest{Name: "   "})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}

func TestUpdatePipeline(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	got, err := f.svc.UpdatePipeline(f.ctx, f.admin, p.ID, UpdatePipelineRequest{Name: ptr("Helpdesk"), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Helpdesk", got.Name)
	assert.False(t, got.IsActive)
	assert.Len(t, got.Stages, 5)

	_, err = f.svc.GetPipeline(f.ctx, f.admin, p.ID)
	assert.ErrorIs(t, err, ErrPipelineNotFound)

	// Inactive pipelines can be brought back.
	got, err = f.svc.UpdatePipeline(f.ctx, f.admin, p.ID, UpdatePipelineRequest{IsActive: ptr(true)})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestDeletePipelineGuard(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	c := f.newCase(f.admin, "x", &p.Stages[2].ID)

	err := f.svc.DeletePipeline(f.ctx, f.admin, p.ID)
	var rule *RuleError
	require.True(t, errors.As(err, &rule), "got %v", err)
	assert.Equal(t, 1, rule.Count)
	assert.Contains(t, rule.Msg, "1 case(s)")

	got, err := f.svc.GetPipeline(f.ctx, f.admin, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	f.mustMove(c.ID, MoveRequest{StageID: model.Null[uuid.UUID]()})
	require.NoError(t, f.svc.DeletePipeline(f.ctx, f.admin, p.ID))

	list, err := f.svc.ListPipelines(f.ctx, f.admin)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Stages survive the soft delete.
	stored, err := f.st.GetPipeline(f.ctx, f.org, p.ID, false)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.Len(t, stored.Stages, 5)
}

func TestPipelineCrossTenant(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	orgB := f.st.PutOrganization(&model.Organization{Name: "Other", IsActive: true}).ID
	outsider := f.memberOf(orgB, model.RoleAdmin)

	_, err := f.svc.GetPipeline(f.ctx, outsider, p.ID)
	assert.ErrorIs(t, err, ErrPipelineNotFound)
	_, err = f.svc.UpdatePipeline(f.ctx, outsider, p.ID, UpdatePipelineRequest{Name: ptr("mine")})
	assert.ErrorIs(t, err, ErrPipelineNotFound)
	assert.ErrorIs(t, f.svc.DeletePipeline(f.ctx, outsider, p.ID), ErrPipelineNotFound)
	_, err = f.svc.CreateStage(f.ctx, outsider, p.ID, CreateStageRequest{Name: "Sneaky"})
	assert.ErrorIs(t, err, ErrPipelineNotFound)
	_, err = f.svc.ReorderStages(f.ctx, outsider, p.ID, ReorderStagesRequest{StageIDs: []uuid.UUID{p.Stages[0].ID}})
	assert.ErrorIs(t, err, ErrPipelineNotFound)
	_, err = f.svc.UpdateStage(f.ctx, outsider, p.Stages[0].ID, UpdateStageRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrStageNotFound)
	assert.ErrorIs(t, f.svc.DeleteStage(f.ctx, outsider, p.Stages[0].ID), ErrStageNotFound)

	list, err := f.svc.ListPipelines(f.ctx, outsider)
	require.NoError(t, err)
	assert.Empty(t, list)
}
