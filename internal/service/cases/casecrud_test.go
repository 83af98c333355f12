package cases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestCreateCaseDefaults(t *testing.T) {
	f := newFixture(t)

	c, err := f.svc.CreateCase(f.ctx, f.user, CreateCaseRequest{Name: "Cannot log in"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusNew, c.Status)
	assert.Equal(t, model.PriorityNormal, c.Priority)
	assert.Equal(t, model.CaseTypeQuestion, c.CaseType)
	assert.True(t, c.KanbanOrder.IsZero())
	assert.Nil(t, c.StageID)
	assert.Equal(t, f.user.UserID, c.CreatedBy)
	assert.NotNil(t, c.AssignedTo)
	assert.NotNil(t, c.Tags)
}

func TestCreateCaseInStage(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)

	c, err := f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{
		Name:    "Broken invoice",
		Status:  model.StatusNew,
		StageID: &p.Stages[3].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, p.Stages[3].ID, *c.StageID)
	assert.Equal(t, model.StatusClosed, c.Status)

	full := f.stage(p.ID, "Capped", ptr(1))
	f.newCase(f.admin, "first", &full.ID)
	_, err = f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{Name: "second", StageID: &full.ID})
	var rule *RuleError
	assert.ErrorAs(t, err, &rule)

	missing := uuid.New()
	_, err = f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{Name: "lost", StageID: &missing})
	requireFieldError(t, err, "stage_id")
}

func TestCreateCaseValidation(t *testing.T) {
	f := newFixture(t)
	orgB := f.st.PutOrganization(&model.Organization{Name: "Other", IsActive: true}).ID
	foreignAcct := f.st.PutAccount(&model.Account{OrgID: orgB, Name: "Initech"})
	foreignTag := f.st.PutTag(&model.Tag{OrgID: orgB, Name: "x"})
	outsider := f.memberOf(orgB, model.RoleUser)

	tests := []struct {
		name  string
		req   CreateCaseRequest
		field string
	}{
		{"missing name", CreateCaseRequest{}, "name"},
		{"bad status", CreateCaseRequest{Name: "x", Status: "Open"}, "status"},
		{"bad priority", CreateCaseRequest{Name: "x", Priority: "Meh"}, "priority"},
		{"bad case type", CreateCaseRequest{Name: "x", CaseType: "Rant"}, "case_type"},
		{"foreign account", CreateCaseRequest{Name: "x", AccountID: &foreignAcct.ID}, "account_id"},
		{"foreign tag", CreateCaseRequest{Name: "x", Tags: []uuid.UUID{foreignTag.ID}}, "tags"},
		{"foreign assignee", CreateCaseRequest{Name: "x", Assignees: []uuid.UUID{outsider.UserID}}, "assigned_to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateCase(f.ctx, f.admin, tt.req)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestCreateCaseDedupesRelations(t *testing.T) {
	f := newFixture(t)
	tag := f.st.PutTag(&model.Tag{OrgID: f.org, Name: "vip"})

	c, err := f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{
		Name:      "x",
		Tags:      []uuid.UUID{tag.ID, tag.ID},
		Assignees: []uuid.UUID{f.user.UserID, f.user.UserID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tag.ID}, c.Tags)
	assert.Equal(t, []uuid.UUID{f.user.UserID}, c.AssignedTo)
}

func TestGetCase(t *testing.T) {
	f := newFixture(t)
	c := f.newCase(f.user, "mine", nil)

	got, err := f.svc.GetCase(f.ctx, f.user, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.svc.GetCase(f.ctx, f.admin, c.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetCase(f.ctx, f.other, c.ID)
	assert.ErrorIs(t, err, ErrCaseAccessDenied)

	_, err = f.svc.GetCase(f.ctx, f.user, uuid.New())
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
