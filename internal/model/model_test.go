package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMembership(t *testing.T) {
	stage := uuid.New()
	staged := &Case{Status: StatusNew, StageID: &stage}
	unstaged := &Case{Status: StatusNew}

	byStage := StageColumn(stage)
	byStatus := StatusColumn(StatusNew)

	assert.True(t, byStage.Contains(staged))
	assert.False(t, byStage.Contains(unstaged))
	assert.True(t, byStatus.Contains(unstaged))
	assert.False(t, byStatus.Contains(staged), "a staged case never sits in a status column")
	assert.False(t, StatusColumn(StatusClosed).Contains(unstaged))

	assert.Equal(t, byStage, ColumnOf(staged))
	assert.Equal(t, byStatus, ColumnOf(unstaged))

	id, ok := byStage.Stage()
	assert.True(t, ok)
	assert.Equal(t, stage, id)
	_, ok = byStage.Status()
	assert.False(t, ok)

	status, ok := byStatus.Status()
	assert.True(t, ok)
	assert.Equal(t, StatusNew, status)
	assert.Equal(t, "status:New", byStatus.String())
}

func TestNullable(t *testing.T) {
	var body struct {
		Stage  Nullable[uuid.UUID] `json:"stage_id"`
		Limit  Nullable[int]       `json:"wip_limit"`
		Absent Nullable[string]    `json:"maps_to_status"`
	}
	id := uuid.New()
	raw := `{"stage_id": "` + id.String() + `", "wip_limit": null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &body))

	assert.True(t, body.Stage.Set)
	require.NotNil(t, body.Stage.Value)
	assert.Equal(t, id, *body.Stage.Value)

	assert.True(t, body.Limit.Set)
	assert.Nil(t, body.Limit.Value)

	assert.False(t, body.Absent.Set)

	err := json.Unmarshal([]byte(`{"wip_limit": "many"}`), &body)
	assert.Error(t, err)
}

func TestDefaultStages(t *testing.T) {
	p := &Pipeline{ID: uuid.New(), OrgID: uuid.New(), CreatedBy: uuid.New()}
	stages := DefaultStages(p)

	require.Len(t, stages, 5)
	for i, st := range stages {
		assert.Equal(t, i, st.Order)
		assert.Equal(t, p.ID, st.PipelineID)
		assert.Equal(t, p.OrgID, st.OrgID)
		assert.True(t, ColorPattern.MatchString(st.Color))
		assert.True(t, IsStageType(st.StageType))
		require.NotNil(t, st.MapsToStatus)
		assert.True(t, IsStatus(*st.MapsToStatus))
	}
	// Each stage owns its mapped status.
	*stages[0].MapsToStatus = "changed"
	assert.Equal(t, StatusAssigned, *stages[1].MapsToStatus)
}

func TestStyleOf(t *testing.T) {
	assert.Equal(t, StatusStyle{Order: 4, Color: "#10B981", Class: "closed"}, StyleOf(StatusClosed))
	assert.Equal(t, StatusStyle{Order: 99, Color: "#9CA3AF", Class: "open"}, StyleOf("Legacy"))
}

func TestCaseClone(t *testing.T) {
	stage := uuid.New()
	c := &Case{StageID: &stage, Tags: []uuid.UUID{uuid.New()}}
	cp := c.Clone()

	*cp.StageID = uuid.New()
	cp.Tags[0] = uuid.New()

	assert.Equal(t, stage, *c.StageID)
	assert.NotEqual(t, cp.Tags[0], c.Tags[0])
}
