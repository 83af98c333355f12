package cases

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store/memstore"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

type recordedEvent struct {
	subject string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{subject: subject, payload: v})
	return nil
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	st    *memstore.Store
	svc   Service
	pub   *recordingPublisher
	authz authorize.IAuthorization
	org   uuid.UUID
	admin model.Actor
	user  model.Actor
	other model.Actor // plain member of org
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	e, err := authorize.NewMemoryEnforcer("")
	require.NoError(t, err)
	authz, err := authorize.NewAuthorization(e)
	require.NoError(t, err)

	st := memstore.New()
	pub := &recordingPublisher{}
	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		st:    st,
		pub:   pub,
		authz: authz,
		svc:   New(st, NewPolicy(authz), pub, config.KanbanConfig{}),
	}

	f.org = st.PutOrganization(&model.Organization{Name: "Acme", IsActive: true}).ID
	f.admin = f.member(model.RoleAdmin)
	f.user = f.member(model.RoleUser)
	f.other = f.member(model.RoleUser)
	return f
}

// member adds a user with role to the fixture organization.
func (f *fixture) member(role string) model.Actor {
	return f.memberOf(f.org, role)
}

func (f *fixture) memberOf(org uuid.UUID, role string) model.Actor {
	u := f.st.PutUser(&model.User{Email: uuid.NewString() + "@example.com"})
	f.st.PutMember(&model.Member{OrgID: org, UserID: u.ID, Role: role, IsActive: true})
	return model.Actor{UserID: u.ID, OrgID: org, Role: role}
}

func (f *fixture) pipeline(name string, defaults bool) *PipelineView {
	f.t.Helper()
	p, err := f.svc.CreatePipeline(f.ctx, f.admin, CreatePipelineRequest{Name: name, CreateDefaultStages: defaults})
	require.NoError(f.t, err)
	return p
}

func (f *fixture) stage(pipelineID uuid.UUID, name string, wip *int) *StageView {
	f.t.Helper()
	st, err := f.svc.CreateStage(f.ctx, f.admin, pipelineID, CreateStageRequest{Name: name, WIPLimit: wip})
	require.NoError(f.t, err)
	return st
}

func (f *fixture) newCase(a model.Actor, name string, stageID *uuid.UUID) *Card {
	f.t.Helper()
	c, err := f.svc.CreateCase(f.ctx, a, CreateCaseRequest{Name: name, StageID: stageID})
	require.NoError(f.t, err)
	return c
}

func (f *fixture) move(a model.Actor, id uuid.UUID, req MoveRequest) (*Card, error) {
	return f.svc.Move(f.ctx, a, id, req)
}

func (f *fixture) mustMove(id uuid.UUID, req MoveRequest) *Card {
	f.t.Helper()
	c, err := f.move(f.admin, id, req)
	require.NoError(f.t, err)
	return c
}

func (f *fixture) order(id uuid.UUID) decimal.Decimal {
	f.t.Helper()
	c, err := f.st.GetCase(f.ctx, f.org, id)
	require.NoError(f.t, err)
	return c.KanbanOrder
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T { return &v }

func column(b *Board, id string) *BoardColumn {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

func cardIDs(col *BoardColumn) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(col.Cases))
	for _, c := range col.Cases {
		out = append(out, c.ID)
	}
	return out
}

// seedColumn creates n cases and appends them one by one to the stage, so
// their orders are step, 2*step, ...
func (f *fixture) seedColumn(stageID uuid.UUID, n int) []uuid.UUID {
	f.t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := range n {
		c := f.newCase(f.admin, fmt.Sprintf("case %d", i+1), nil)
		f.mustMove(c.ID, MoveRequest{StageID: model.Some(stageID)})
		ids = append(ids, c.ID)
	}
	return ids
}
