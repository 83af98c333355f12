package cases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

func TestMoveWIPLimit(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	full := f.stage(p.ID, "Doing", ptr(2))
	f.seedColumn(full.ID, 2)

	c := f.newCase(f.admin, "overflow", nil)
	_, err := f.move(f.admin, c.ID, MoveRequest{StageID: model.Some(full.ID), Status: ptr(model.StatusPending)})

	var rule *RuleError
	require.True(t, errors.As(err, &rule), "got %v", err)
	assert.Contains(t, rule.Msg, `"Doing"`)
	assert.Contains(t, rule.Msg, "WIP limit of 2")
	assert.Equal(t, 2, rule.Count)

	// Nothing was written.
	got, err := f.st.GetCase(f.ctx, f.org, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StageID)
	assert.Equal(t, model.StatusNew, got.Status)
	assert.True(t, got.KanbanOrder.IsZero())

	roomy := f.stage(p.ID, "Review", ptr(2))
	f.seedColumn(roomy.ID, 1)
	moved, err := f.move(f.admin, c.ID, MoveRequest{StageID: model.Some(roomy.ID)})
	require.NoError(t, err)
	assert.Equal(t, roomy.ID, *moved.StageID)
}

func TestMoveWithinFullStage(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Doing", ptr(2))
	ids := f.seedColumn(st.ID, 2)

	// The moved case does not count against its own stage.
	moved, err := f.move(f.admin, ids[1], MoveRequest{StageID: model.Some(st.ID), BelowCaseID: &ids[0]})
	require.NoError(t, err)
	assert.True(t, moved.KanbanOrder.LessThan(f.order(ids[0])))
}

func TestMoveSyncsMappedStatus(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	resolved := p.Stages[3]
	c := f.newCase(f.admin, "x", nil)

	moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(resolved.ID)})
	assert.Equal(t, model.StatusClosed, moved.Status)

	// An explicit status wins over the stage mapping.
	moved = f.mustMove(c.ID, MoveRequest{StageID: model.Some(resolved.ID), Status: ptr(model.StatusDuplicate)})
	assert.Equal(t, model.StatusDuplicate, moved.Status)

	// Clearing the stage keeps the status.
	moved = f.mustMove(c.ID, MoveRequest{StageID: model.Null[uuid.UUID]()})
	assert.Nil(t, moved.StageID)
	assert.Equal(t, model.StatusDuplicate, moved.Status)
}

func TestMoveUnmappedStageKeepsStatus(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Backlog", nil)
	c := f.newCase(f.admin, "x", nil)
	f.mustMove(c.ID, MoveRequest{Status: ptr(model.StatusAssigned)})

	moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID)})
	assert.Equal(t, model.StatusAssigned, moved.Status)
}

func TestMoveValidation(t *testing.T) {
	f := newFixture(t)
	c := f.newCase(f.admin, "x", nil)

	tests := []struct {
		name  string
		req   MoveRequest
		field string
	}{
		{"empty payload", MoveRequest{}, "non_field_errors"},
		{"unknown status", MoveRequest{Status: ptr("Parked")}, "status"},
		{"relative to itself", MoveRequest{AboveCaseID: &c.ID}, "above_case_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.move(f.admin, c.ID, tt.req)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestMoveNotFound(t *testing.T) {
	f := newFixture(t)
	c := f.newCase(f.admin, "x", nil)
	missing := uuid.New()

	_, err := f.move(f.admin, missing, MoveRequest{Status: ptr(model.StatusPending)})
	assert.ErrorIs(t, err, ErrCaseNotFound)

	_, err = f.move(f.admin, c.ID, MoveRequest{StageID: model.Some(missing)})
	assert.ErrorIs(t, err, ErrStageNotFound)

	_, err = f.move(f.admin, c.ID, MoveRequest{AboveCaseID: &missing})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestMovePermission(t *testing.T) {
	f := newFixture(t)
	c, err := f.svc.CreateCase(f.ctx, f.user, CreateCaseRequest{
		Name:      "mine",
		Assignees: []uuid.UUID{f.user.UserID},
	})
	require.NoError(t, err)

	_, err = f.move(f.other, c.ID, MoveRequest{Status: ptr(model.StatusPending)})
	assert.ErrorIs(t, err, ErrCaseAccessDenied)

	moved, err := f.move(f.user, c.ID, MoveRequest{Status: ptr(model.StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, moved.Status)

	assignee := f.member(model.RoleUser)
	c2, err := f.svc.CreateCase(f.ctx, f.admin, CreateCaseRequest{
		Name:      "delegated",
		Assignees: []uuid.UUID{assignee.UserID},
	})
	require.NoError(t, err)
	_, err = f.move(assignee, c2.ID, MoveRequest{Status: ptr(model.StatusAssigned)})
	assert.NoError(t, err)

	superuser := model.Actor{UserID: uuid.New(), OrgID: f.org, IsSuperuser: true}
	_, err = f.move(superuser, c2.ID, MoveRequest{Status: ptr(model.StatusClosed)})
	assert.NoError(t, err)
}

func TestMoveCrossTenant(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	c := f.newCase(f.admin, "x", nil)

	orgB := f.st.PutOrganization(&model.Organization{Name: "Other", IsActive: true}).ID
	outsider := f.memberOf(orgB, model.RoleAdmin)

	_, err := f.move(outsider, c.ID, MoveRequest{Status: ptr(model.StatusClosed)})
	assert.ErrorIs(t, err, ErrCaseNotFound)

	own := f.newCase(outsider, "theirs", nil)
	_, err = f.move(outsider, own.ID, MoveRequest{StageID: model.Some(p.Stages[0].ID)})
	assert.ErrorIs(t, err, ErrStageNotFound)

	_, err = f.move(outsider, own.ID, MoveRequest{AboveCaseID: &c.ID})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestMoveHiddenNeighbour(t *testing.T) {
	f := newFixture(t)
	mine := f.newCase(f.user, "mine", nil)
	hidden := f.newCase(f.other, "hidden", nil)
	before := f.order(mine.ID)

	_, err := f.move(f.user, mine.ID, MoveRequest{AboveCaseID: &hidden.ID})
	assert.ErrorIs(t, err, ErrCaseNotFound)
	_, err = f.move(f.user, mine.ID, MoveRequest{BelowCaseID: &hidden.ID})
	assert.ErrorIs(t, err, ErrCaseNotFound)
	assert.True(t, f.order(mine.ID).Equal(before), "order unchanged")

	_, err = f.move(f.admin, mine.ID, MoveRequest{AboveCaseID: &hidden.ID})
	assert.NoError(t, err, "admins see every case")
}

func TestMovePublishesEvent(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	c := f.newCase(f.admin, "x", nil)

	moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(p.Stages[1].ID)})

	require.Len(t, f.pub.events, 1)
	ev := f.pub.events[0]
	assert.Equal(t, "case.moved."+c.ID.String(), ev.subject)
	payload, ok := ev.payload.(CaseMoved)
	require.True(t, ok)
	assert.Equal(t, c.ID, payload.CaseID)
	assert.Equal(t, f.org, payload.OrgID)
	assert.Nil(t, payload.FromStageID)
	assert.Equal(t, p.Stages[1].ID, *payload.ToStageID)
	assert.Equal(t, model.StatusNew, payload.FromStatus)
	assert.Equal(t, model.StatusAssigned, payload.ToStatus)
	assert.True(t, payload.KanbanOrder.Equal(moved.KanbanOrder))
	assert.Equal(t, f.admin.UserID, payload.MovedBy)

	_, err := f.move(f.admin, c.ID, MoveRequest{})
	require.Error(t, err)
	assert.Len(t, f.pub.events, 1)
}

func TestMoveRollsBackOnStoreFailure(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", true)
	c := f.newCase(f.admin, "x", nil)

	failing := New(failingSave{f.st}, NewPolicy(f.authz), nil, config.KanbanConfig{})
	_, err := failing.Move(f.ctx, f.admin, c.ID, MoveRequest{StageID: model.Some(p.Stages[3].ID)})
	require.Error(t, err)

	got, err := f.st.GetCase(f.ctx, f.org, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StageID)
	assert.Equal(t, model.StatusNew, got.Status)
}

var errBoom = errors.New("boom")

// failingSave breaks SaveCasePosition, including inside transactions.
type failingSave struct {
	store.Store
}

func (failingSave) SaveCasePosition(context.Context, *model.Case) error {
	return errBoom
}

func (s failingSave) InTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	return s.Store.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		return fn(ctx, failingSave{tx})
	})
}
