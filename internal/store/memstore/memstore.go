// Package memstore is an in-memory store.Store. It backs the "memory" store
// kind and the service tests.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
)

type state struct {
	orgs      map[uuid.UUID]*model.Organization
	users     map[uuid.UUID]*model.User
	members   map[[2]uuid.UUID]*model.Member // org, user
	accounts  map[uuid.UUID]*model.Account
	tags      map[uuid.UUID]*model.Tag
	pipelines map[uuid.UUID]*model.Pipeline // Stages left nil, see stages
	stages    map[uuid.UUID]*model.Stage
	cases     map[uuid.UUID]*model.Case
}

func newState() *state {
	return &state{
		orgs:      make(map[uuid.UUID]*model.Organization),
		users:     make(map[uuid.UUID]*model.User),
		members:   make(map[[2]uuid.UUID]*model.Member),
		accounts:  make(map[uuid.UUID]*model.Account),
		tags:      make(map[uuid.UUID]*model.Tag),
		pipelines: make(map[uuid.UUID]*model.Pipeline),
		stages:    make(map[uuid.UUID]*model.Stage),
		cases:     make(map[uuid.UUID]*model.Case),
	}
}

func (st *state) clone() *state {
	out := newState()
	for k, v := range st.orgs {
		c := *v
		out.orgs[k] = &c
	}
	for k, v := range st.users {
		c := *v
		out.users[k] = &c
	}
	for k, v := range st.members {
		c := *v
		out.members[k] = &c
	}
	for k, v := range st.accounts {
		c := *v
		out.accounts[k] = &c
	}
	for k, v := range st.tags {
		c := *v
		out.tags[k] = &c
	}
	for k, v := range st.pipelines {
		c := *v
		out.pipelines[k] = &c
	}
	for k, v := range st.stages {
		out.stages[k] = v.Clone()
	}
	for k, v := range st.cases {
		out.cases[k] = v.Clone()
	}
	return out
}

// Store keeps every record in maps guarded by a mutex. Transactions are
// serialized and roll back by restoring a snapshot.
type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	data     *state
	lastTime time.Time
}

func New() *Store {
	return &Store{data: newState()}
}

var _ store.Store = (*Store)(nil)

// txStore joins the transaction already held by its parent.
type txStore struct {
	*Store
}

func (t txStore) InTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	return fn(ctx, t)
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	rollback := func() {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
	}

	defer func() {
		if v := recover(); v != nil {
			rollback()
			panic(v)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx, txStore{s}); err != nil {
		rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		rollback()
		return err
	}
	return nil
}

// now returns strictly increasing timestamps so that creation order is
// always observable.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.lastTime) {
		t = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = t
	return t
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

func (s *Store) PutOrganization(o *model.Organization) *model.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = newID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now()
	}
	c := *o
	s.data.orgs[o.ID] = &c
	return o
}

func (s *Store) PutUser(u *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = newID()
	}
	c := *u
	s.data.users[u.ID] = &c
	return u
}

func (s *Store) PutMember(m *model.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *m
	s.data.members[[2]uuid.UUID{m.OrgID, m.UserID}] = &c
}

func (s *Store) PutAccount(a *model.Account) *model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = newID()
	}
	c := *a
	s.data.accounts[a.ID] = &c
	return a
}

func (s *Store) PutTag(t *model.Tag) *model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = newID()
	}
	c := *t
	s.data.tags[t.ID] = &c
	return t
}

// ---------------------------------------------------------------------------
// Tenancy
// ---------------------------------------------------------------------------

func (s *Store) GetOrganization(_ context.Context, id uuid.UUID) (*model.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.data.orgs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *o
	return &c, nil
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.data.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (s *Store) GetMember(_ context.Context, orgID, userID uuid.UUID) (*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.data.members[[2]uuid.UUID{orgID, userID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *m
	return &c, nil
}

func (s *Store) CountMembers(_ context.Context, orgID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, id := range dedupe(userIDs) {
		if m, ok := s.data.members[[2]uuid.UUID{orgID, id}]; ok && m.IsActive {
			n++
		}
	}
	return n, nil
}

func (s *Store) AccountExists(_ context.Context, orgID, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.data.accounts[id]
	return ok && a.OrgID == orgID, nil
}

func (s *Store) CountTags(_ context.Context, orgID uuid.UUID, ids []uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, id := range dedupe(ids) {
		if t, ok := s.data.tags[id]; ok && t.OrgID == orgID {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Pipelines
// ---------------------------------------------------------------------------

func (s *Store) ListPipelines(_ context.Context, orgID uuid.UUID) ([]*model.Pipeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Pipeline
	for _, p := range s.data.pipelines {
		if p.OrgID == orgID && p.IsActive {
			out = append(out, s.loadPipeline(p))
		}
	}
	slices.SortFunc(out, func(a, b *model.Pipeline) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *Store) GetPipeline(_ context.Context, orgID, id uuid.UUID, activeOnly bool) (*model.Pipeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.pipelines[id]
	if !ok || p.OrgID != orgID || (activeOnly && !p.IsActive) {
		return nil, store.ErrNotFound
	}
	return s.loadPipeline(p), nil
}

// loadPipeline copies p and attaches its stages. Callers hold mu.
func (s *Store) loadPipeline(p *model.Pipeline) *model.Pipeline {
	out := *p
	out.Stages = s.stagesOf(p.ID)
	return &out
}

func (s *Store) stagesOf(pipelineID uuid.UUID) []*model.Stage {
	var out []*model.Stage
	for _, st := range s.data.stages {
		if st.PipelineID == pipelineID {
			out = append(out, st.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *model.Stage) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (s *Store) CreatePipeline(_ context.Context, p *model.Pipeline, stages []*model.Stage) (*model.Pipeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	np := *p
	np.ID = newID()
	np.CreatedAt = s.now()
	np.UpdatedAt = np.CreatedAt
	np.Stages = nil
	s.data.pipelines[np.ID] = &np

	for _, st := range stages {
		ns := st.Clone()
		ns.ID = newID()
		ns.PipelineID = np.ID
		if ns.OrgID == uuid.Nil {
			ns.OrgID = np.OrgID
		}
		ns.CreatedAt = s.now()
		ns.UpdatedAt = ns.CreatedAt
		if err := s.checkStageName(ns); err != nil {
			return nil, err
		}
		s.data.stages[ns.ID] = ns
	}
	return s.loadPipeline(&np), nil
}

func (s *Store) UpdatePipeline(_ context.Context, p *model.Pipeline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.data.pipelines[p.ID]
	if !ok || cur.OrgID != p.OrgID {
		return store.ErrNotFound
	}
	cur.Name = p.Name
	cur.IsActive = p.IsActive
	cur.UpdatedAt = s.now()
	return nil
}

func (s *Store) CountPipelineCases(_ context.Context, orgID, pipelineID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.data.cases {
		if c.OrgID == orgID && s.inPipeline(c, pipelineID) {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Stages
// ---------------------------------------------------------------------------

func (s *Store) GetStage(_ context.Context, orgID, id uuid.UUID, _ bool) (*model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.data.stages[id]
	if !ok || st.OrgID != orgID {
		return nil, store.ErrNotFound
	}
	return st.Clone(), nil
}

func (s *Store) ListStages(_ context.Context, orgID, pipelineID uuid.UUID) ([]*model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.pipelines[pipelineID]
	if !ok || p.OrgID != orgID {
		return nil, nil
	}
	return s.stagesOf(pipelineID), nil
}

func (s *Store) CreateStage(_ context.Context, st *model.Stage) (*model.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.pipelines[st.PipelineID]; !ok {
		return nil, store.ErrNotFound
	}
	ns := st.Clone()
	ns.ID = newID()
	ns.CreatedAt = s.now()
	ns.UpdatedAt = ns.CreatedAt
	if err := s.checkStageName(ns); err != nil {
		return nil, err
	}
	s.data.stages[ns.ID] = ns
	return ns.Clone(), nil
}

func (s *Store) UpdateStage(_ context.Context, st *model.Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.data.stages[st.ID]
	if !ok || cur.OrgID != st.OrgID {
		return store.ErrNotFound
	}
	if err := s.checkStageName(st); err != nil {
		return err
	}
	ns := st.Clone()
	ns.PipelineID = cur.PipelineID
	ns.CreatedAt = cur.CreatedAt
	ns.UpdatedAt = s.now()
	s.data.stages[st.ID] = ns
	return nil
}

// checkStageName enforces the per-pipeline unique name. Callers hold mu.
func (s *Store) checkStageName(st *model.Stage) error {
	for _, other := range s.data.stages {
		if other.ID != st.ID && other.PipelineID == st.PipelineID && other.Name == st.Name {
			return store.ErrConflict
		}
	}
	return nil
}

func (s *Store) DeleteStage(_ context.Context, orgID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.data.stages[id]
	if !ok || st.OrgID != orgID {
		return store.ErrNotFound
	}
	delete(s.data.stages, id)
	return nil
}

func (s *Store) SetStageOrders(_ context.Context, orders map[uuid.UUID]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range orders {
		if _, ok := s.data.stages[id]; !ok {
			return store.ErrNotFound
		}
	}
	now := s.now()
	for id, order := range orders {
		st := s.data.stages[id]
		st.Order = order
		st.UpdatedAt = now
	}
	return nil
}

// ---------------------------------------------------------------------------
// Cases
// ---------------------------------------------------------------------------

func (s *Store) GetCase(_ context.Context, orgID, id uuid.UUID) (*model.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data.cases[id]
	if !ok || c.OrgID != orgID {
		return nil, store.ErrNotFound
	}
	return c.Clone(), nil
}

func (s *Store) CreateCase(_ context.Context, c *model.Case) (*model.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nc := c.Clone()
	nc.ID = newID()
	nc.CreatedAt = s.now()
	nc.UpdatedAt = nc.CreatedAt
	nc.Assignees = dedupe(nc.Assignees)
	nc.Tags = dedupe(nc.Tags)
	s.data.cases[nc.ID] = nc
	return nc.Clone(), nil
}

func (s *Store) QueryCases(_ context.Context, q model.CaseQuery) ([]*model.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.match(q)
	sortCases(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	for i, c := range out {
		out[i] = c.Clone()
	}
	return out, nil
}

func (s *Store) CountCases(_ context.Context, q model.CaseQuery) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.match(q)), nil
}

func (s *Store) NeighborAfter(_ context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := s.match(model.CaseQuery{OrgID: orgID, Column: &col, ExcludeID: &exclude})
	sortCases(cs)
	for _, c := range cs {
		if c.KanbanOrder.GreaterThan(order) {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

func (s *Store) NeighborBefore(_ context.Context, orgID uuid.UUID, col model.Column, order decimal.Decimal, exclude uuid.UUID) (*model.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := s.match(model.CaseQuery{OrgID: orgID, Column: &col, ExcludeID: &exclude})
	sortCases(cs)
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].KanbanOrder.LessThan(order) {
			return cs[i].Clone(), nil
		}
	}
	return nil, nil
}

func (s *Store) LastInColumn(_ context.Context, orgID uuid.UUID, col model.Column, exclude uuid.UUID) (*model.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := s.match(model.CaseQuery{OrgID: orgID, Column: &col, ExcludeID: &exclude})
	if len(cs) == 0 {
		return nil, nil
	}
	sortCases(cs)
	return cs[len(cs)-1].Clone(), nil
}

func (s *Store) SaveCasePosition(_ context.Context, c *model.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.data.cases[c.ID]
	if !ok || cur.OrgID != c.OrgID {
		return store.ErrNotFound
	}
	if c.StageID != nil {
		if _, ok := s.data.stages[*c.StageID]; !ok {
			return store.ErrNotFound
		}
	}
	cur.StageID = cloneUUID(c.StageID)
	cur.Status = c.Status
	cur.KanbanOrder = c.KanbanOrder
	cur.UpdatedAt = s.now()
	c.UpdatedAt = cur.UpdatedAt
	return nil
}

func (s *Store) SetKanbanOrders(_ context.Context, orders map[uuid.UUID]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range orders {
		if _, ok := s.data.cases[id]; !ok {
			return store.ErrNotFound
		}
	}
	for id, order := range orders {
		s.data.cases[id].KanbanOrder = order
	}
	return nil
}

// match applies q to every case. Callers hold mu.
func (s *Store) match(q model.CaseQuery) []*model.Case {
	var out []*model.Case
	for _, c := range s.data.cases {
		if s.matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) matches(c *model.Case, q model.CaseQuery) bool {
	if c.OrgID != q.OrgID {
		return false
	}
	if q.ExcludeID != nil && c.ID == *q.ExcludeID {
		return false
	}
	if q.VisibleTo != nil && c.CreatedBy != *q.VisibleTo && !c.IsAssignee(*q.VisibleTo) {
		return false
	}
	if q.PipelineID != nil && !s.inPipeline(c, *q.PipelineID) {
		return false
	}
	if q.Status != nil && c.Status != *q.Status {
		return false
	}
	if q.StageID != nil && (c.StageID == nil || *c.StageID != *q.StageID) {
		return false
	}
	if q.Column != nil && !q.Column.Contains(c) {
		return false
	}

	f := q.Filter
	if f.AssignedTo != nil && !c.IsAssignee(*f.AssignedTo) {
		return false
	}
	if f.Priority != nil && c.Priority != *f.Priority {
		return false
	}
	if f.CaseType != nil && c.CaseType != *f.CaseType {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) {
			return false
		}
	}
	if f.AccountID != nil && (c.AccountID == nil || *c.AccountID != *f.AccountID) {
		return false
	}
	if f.TagID != nil && !slices.Contains(c.Tags, *f.TagID) {
		return false
	}
	if f.CreatedFrom != nil && c.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && c.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

func (s *Store) inPipeline(c *model.Case, pipelineID uuid.UUID) bool {
	if c.StageID == nil {
		return false
	}
	st, ok := s.data.stages[*c.StageID]
	return ok && st.PipelineID == pipelineID
}

// sortCases orders by kanban_order ascending, newest first on ties.
func sortCases(cs []*model.Case) {
	slices.SortFunc(cs, func(a, b *model.Case) int {
		if c := a.KanbanOrder.Cmp(b.KanbanOrder); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
