package cases

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestBoardStatusModeColumns(t *testing.T) {
	f := newFixture(t)
	f.newCase(f.admin, "one", nil)
	c := f.newCase(f.admin, "two", nil)
	f.mustMove(c.ID, MoveRequest{Status: ptr(model.StatusClosed)})

	b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)

	assert.Equal(t, ModeStatus, b.Mode)
	assert.Nil(t, b.Pipeline)
	assert.Equal(t, 2, b.TotalCases)
	require.Len(t, b.Columns, len(model.Statuses))
	for i, col := range b.Columns {
		assert.Equal(t, model.Statuses[i], col.ID)
		assert.True(t, col.IsStatusColumn)
		assert.NotNil(t, col.Cases)
		if i > 0 {
			assert.Less(t, b.Columns[i-1].Order, col.Order)
		}
	}

	assert.Equal(t, 1, column(b, model.StatusNew).CaseCount)
	assert.Equal(t, 1, column(b, model.StatusClosed).CaseCount)
	assert.Equal(t, "closed", column(b, model.StatusClosed).StageType)
	assert.Equal(t, 0, column(b, model.StatusDuplicate).CaseCount)
	assert.Empty(t, column(b, model.StatusDuplicate).Cases)
}

func TestBoardTiesAreNewestFirst(t *testing.T) {
	f := newFixture(t)
	c1 := f.newCase(f.admin, "one", nil)
	c2 := f.newCase(f.admin, "two", nil)
	c3 := f.newCase(f.admin, "three", nil)

	b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{c3.ID, c2.ID, c1.ID}, cardIDs(column(b, model.StatusNew)))
}

func TestBoardTruncatesCards(t *testing.T) {
	f := newFixture(t)
	svc := New(f.st, NewPolicy(f.authz), nil, config.KanbanConfig{CardLimit: 2})
	for range 3 {
		f.newCase(f.admin, "case", nil)
	}

	b, err := svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)

	col := column(b, model.StatusNew)
	assert.Equal(t, 3, col.CaseCount)
	assert.Len(t, col.Cases, 2)
	assert.Equal(t, 3, b.TotalCases)
}

func TestBoardVisibility(t *testing.T) {
	f := newFixture(t)
	own := f.newCase(f.user, "mine", nil)
	assigned, err := f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{
		Name:      "assigned to me",
		Assignees: []uuid.UUID{f.user.UserID},
	})
	require.NoError(t, err)
	f.newCase(f.other, "someone else's", nil)

	b, err := f.svc.Board(f.ctx, f.user, BoardRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, b.TotalCases)
	assert.ElementsMatch(t, []uuid.UUID{own.ID, assigned.ID}, cardIDs(column(b, model.StatusNew)))

	b, err = f.svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, b.TotalCases)
}

func TestBoardPipelineModePartition(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	other := f.pipeline("Sales", true)

	inNew := f.newCase(f.admin, "a", &p.Stages[0].ID)
	inProgress := f.newCase(f.admin, "b", &p.Stages[2].ID)
	f.newCase(f.admin, "elsewhere", &other.Stages[0].ID)
	f.newCase(f.admin, "unstaged", nil)

	b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{PipelineID: &p.ID})
	require.NoError(t, err)

	assert.Equal(t, ModePipeline, b.Mode)
	require.NotNil(t, b.Pipeline)
	assert.Equal(t, p.ID, b.Pipeline.ID)
	assert.Equal(t, 5, b.Pipeline.StageCount)
	require.Len(t, b.Columns, 5)

	seen := map[uuid.UUID]int{}
	sum := 0
	for i, col := range b.Columns {
		assert.Equal(t, p.Stages[i].ID.String(), col.ID)
		assert.False(t, col.IsStatusColumn)
		sum += col.CaseCount
		for _, card := range col.Cases {
			seen[card.ID]++
		}
	}
	assert.Equal(t, map[uuid.UUID]int{inNew.ID: 1, inProgress.ID: 1}, seen)
	assert.Equal(t, 2, b.TotalCases)
	assert.Equal(t, b.TotalCases, sum)

	assert.Equal(t, model.StatusPending, *column(b, p.Stages[2].ID.String()).MapsToStatus)
}

func TestBoardPipelineNotFound(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	require.NoError(t, f.svc.DeletePipeline(f.ctx, f.admin, p.ID))

	_, err := f.svc.Board(f.ctx, f.admin, BoardRequest{PipelineID: &p.ID})
	assert.ErrorIs(t, err, ErrPipelineNotFound)

	missing := uuid.New()
	_, err = f.svc.Board(f.ctx, f.admin, BoardRequest{PipelineID: &missing})
	assert.ErrorIs(t, err, ErrPipelineNotFound)
}

func TestBoardFilters(t *testing.T) {
	f := newFixture(t)
	acct := f.st.PutAccount(&model.Account{OrgID: f.org, Name: "Globex"})
	tag := f.st.PutTag(&model.Tag{OrgID: f.org, Name: "vip"})

	urgent, err := f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{
		Name:        "Printer on fire",
		Description: "smoke everywhere",
		Priority:    model.PriorityUrgent,
		CaseType:    model.CaseTypeIncident,
		AccountID:   &acct.ID,
		Tags:        []uuid.UUID{tag.ID},
		Assignees:   []uuid.UUID{f.user.UserID},
	})
	require.NoError(t, err)
	f.newCase(f.admin, "Password reset", nil)

	tests := []struct {
		name   string
		filter model.CaseFilter
		want   int
	}{
		{"no filter", model.CaseFilter{}, 2},
		{"priority", model.CaseFilter{Priority: ptr(model.PriorityUrgent)}, 1},
		{"case type", model.CaseFilter{CaseType: ptr(model.CaseTypeQuestion)}, 1},
		{"search name ignores case", model.CaseFilter{Search: "PRINTER"}, 1},
		{"search description", model.CaseFilter{Search: "smoke"}, 1},
		{"assignee", model.CaseFilter{AssignedTo: &f.user.UserID}, 1},
		{"account", model.CaseFilter{AccountID: &acct.ID}, 1},
		{"tag", model.CaseFilter{TagID: &tag.ID}, 1},
		{"combined", model.CaseFilter{Priority: ptr(model.PriorityUrgent), Search: "reset"}, 0},
		{"created after", model.CaseFilter{CreatedFrom: ptr(time.Now().Add(time.Hour))}, 0},
		{"created before", model.CaseFilter{CreatedTo: ptr(time.Now().Add(time.Hour))}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{Filter: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.TotalCases)
		})
	}

	b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{Filter: model.CaseFilter{TagID: &tag.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{urgent.ID}, cardIDs(column(b, model.StatusNew)))
}

func TestBoardRejectsInvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Board(f.ctx, f.admin, BoardRequest{Filter: model.CaseFilter{Priority: ptr("Sometime")}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "priority")
}

func TestBoardCrossTenant(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	f.newCase(f.admin, "secret", &p.Stages[0].ID)

	orgB := f.st.PutOrganization(&model.Organization{Name: "Other", IsActive: true}).ID
	outsider := f.memberOf(orgB, model.RoleAdmin)

	b, err := f.svc.Board(f.ctx, outsider, BoardRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, b.TotalCases)

	_, err = f.svc.Board(f.ctx, outsider, BoardRequest{PipelineID: &p.ID})
	assert.ErrorIs(t, err, ErrPipelineNotFound)
}
