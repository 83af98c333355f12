package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/api/http/router"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/internal/store/memstore"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
	pasetotoken "github.com/Alijeyrad/crm_backend/pkg/paseto"
)

type testServer struct {
	t   *testing.T
	app *fiber.App
	mgr *pasetotoken.Manager
	st  *memstore.Store
	org uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Kanban.Store = config.StoreMemory
	cfg.ApplyDefaults()

	e, err := authorize.NewMemoryEnforcer("")
	require.NoError(t, err)
	authz, err := authorize.NewAuthorization(e)
	require.NoError(t, err)

	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:     pasetotoken.ModeLocal,
		Issuer:   "identity.test",
		Audience: "crm.test",
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	st := memstore.New()
	org := st.PutOrganization(&model.Organization{Name: "acme", IsActive: true})

	app := newApp(cfg, nil, false)
	router.NewRouter(router.Params{
		Cfg:       cfg,
		Store:     st,
		CaseSvc:   cases.New(st, cases.NewPolicy(authz), nil, cfg.Kanban),
		PasetoMgr: mgr,
	}).Register(app)

	return &testServer{t: t, app: app, mgr: mgr, st: st, org: org.ID}
}

// member creates a user with the given membership role and returns a token.
func (s *testServer) member(role string) string {
	s.t.Helper()
	u := s.st.PutUser(&model.User{Email: uuid.NewString() + "@acme.test"})
	if role != "" {
		s.st.PutMember(&model.Member{OrgID: s.org, UserID: u.ID, Role: role, IsActive: true})
	}
	tok, err := s.mgr.IssueAccess(u.ID, nil)
	require.NoError(s.t, err)
	return tok
}

type response struct {
	status int
	body   map[string]any
}

func (r response) data() map[string]any {
	d, _ := r.body["data"].(map[string]any)
	return d
}

func (s *testServer) do(method, path, token string, body any) response {
	s.t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		req.Header.Set("X-Org-ID", s.org.String())
	}

	resp, err := s.app.Test(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	out := response{status: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	if len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, &out.body), string(raw))
	}
	return out
}

func stageIDs(t *testing.T, pipeline map[string]any) []string {
	t.Helper()
	raw, ok := pipeline["stages"].([]any)
	require.True(t, ok)
	ids := make([]string, 0, len(raw))
	for _, s := range raw {
		ids = append(ids, s.(map[string]any)["id"].(string))
	}
	return ids
}

func TestProbes(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz", "/startupz"} {
		resp, err := s.app.Test(httptest.NewRequest(nethttp.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestAuthAndOrgContext(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(nethttp.MethodGet, "/api/cases/kanban/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.status)

	resp = s.do(nethttp.MethodGet, "/api/cases/kanban/", "garbage", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.status)

	outsider := s.member("")
	resp = s.do(nethttp.MethodGet, "/api/cases/kanban/", outsider, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.status)

	// Missing header
	tok := s.member(model.RoleUser)
	req := httptest.NewRequest(nethttp.MethodGet, "/api/cases/kanban/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	raw, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, raw.StatusCode)

	resp = s.do(nethttp.MethodGet, "/api/cases/kanban/", tok, nil)
	assert.Equal(t, fiber.StatusOK, resp.status)
	assert.Equal(t, cases.ModeStatus, resp.data()["mode"])
}

func TestPipelineLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := s.member(model.RoleAdmin)
	user := s.member(model.RoleUser)

	resp := s.do(nethttp.MethodPost, "/api/cases/pipelines/", user, map[string]any{"name": "Support"})
	assert.Equal(t, fiber.StatusForbidden, resp.status)
	assert.Equal(t, cases.ErrAdminRequired.Error(), resp.body["error"])

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/", admin, map[string]any{"name": ""})
	require.Equal(t, fiber.StatusBadRequest, resp.status)
	errs, ok := resp.body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "name")

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/", admin, map[string]any{
		"name":                  "Support",
		"create_default_stages": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.status)
	pipelineID := resp.data()["id"].(string)
	assert.Len(t, stageIDs(t, resp.data()), 5)

	resp = s.do(nethttp.MethodGet, "/api/cases/pipelines/"+pipelineID+"/", user, nil)
	assert.Equal(t, fiber.StatusOK, resp.status)

	resp = s.do(nethttp.MethodPut, "/api/cases/pipelines/"+pipelineID+"/", admin, map[string]any{"name": "Helpdesk"})
	require.Equal(t, fiber.StatusOK, resp.status)
	assert.Equal(t, "Helpdesk", resp.data()["name"])

	resp = s.do(nethttp.MethodDelete, "/api/cases/pipelines/"+pipelineID+"/", admin, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.status)

	resp = s.do(nethttp.MethodGet, "/api/cases/pipelines/"+pipelineID+"/", user, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.status)

	resp = s.do(nethttp.MethodGet, "/api/cases/pipelines/not-a-uuid/", user, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.status)
}

func TestBoardAndMove(t *testing.T) {
	s := newTestServer(t)
	admin := s.member(model.RoleAdmin)

	resp := s.do(nethttp.MethodPost, "/api/cases/pipelines/", admin, map[string]any{
		"name":                  "Support",
		"create_default_stages": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.status)
	pipelineID := resp.data()["id"].(string)
	stages := stageIDs(t, resp.data())

	resp = s.do(nethttp.MethodPost, "/api/cases/", admin, map[string]any{
		"name":     "Printer jam",
		"stage_id": stages[0],
	})
	require.Equal(t, fiber.StatusCreated, resp.status)
	caseID := resp.data()["id"].(string)
	assert.Equal(t, model.StatusNew, resp.data()["status"])

	resp = s.do(nethttp.MethodGet, "/api/cases/kanban/?pipeline_id="+pipelineID, admin, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	board := resp.data()
	assert.Equal(t, cases.ModePipeline, board["mode"])
	assert.EqualValues(t, 1, board["total_cases"])
	cols := board["columns"].([]any)
	require.Len(t, cols, 5)
	assert.EqualValues(t, 1, cols[0].(map[string]any)["case_count"])

	resp = s.do(nethttp.MethodPatch, "/api/cases/"+caseID+"/move/", admin, map[string]any{"stage_id": stages[1]})
	require.Equal(t, fiber.StatusOK, resp.status)
	assert.Equal(t, stages[1], resp.data()["stage_id"])
	assert.Equal(t, model.StatusAssigned, resp.data()["status"])
	assert.Equal(t, "1000", resp.data()["kanban_order"])

	resp = s.do(nethttp.MethodGet, "/api/cases/"+caseID+"/", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	assert.Equal(t, model.StatusAssigned, resp.data()["status"])

	resp = s.do(nethttp.MethodPatch, "/api/cases/"+caseID+"/move/", admin, map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, resp.status)

	resp = s.do(nethttp.MethodPatch, "/api/cases/"+uuid.NewString()+"/move/", admin, map[string]any{"status": model.StatusClosed})
	assert.Equal(t, fiber.StatusNotFound, resp.status)

	resp = s.do(nethttp.MethodGet, "/api/cases/kanban/?assigned_to=nope&created_at__gte=yesterday", admin, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.status)
	errs := resp.body["errors"].(map[string]any)
	assert.Contains(t, errs, "assigned_to")
	assert.Contains(t, errs, "created_at__gte")
}

func TestStageRulesOverHTTP(t *testing.T) {
	s := newTestServer(t)
	admin := s.member(model.RoleAdmin)

	resp := s.do(nethttp.MethodPost, "/api/cases/pipelines/", admin, map[string]any{
		"name":                  "Escalations",
		"create_default_stages": false,
	})
	require.Equal(t, fiber.StatusCreated, resp.status)
	pipelineID := resp.data()["id"].(string)

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/"+pipelineID+"/stages/", admin, map[string]any{
		"name":      "Hot",
		"wip_limit": 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.status)
	hot := resp.data()["id"].(string)

	resp = s.do(nethttp.MethodPost, "/api/cases/", admin, map[string]any{"name": "first", "stage_id": hot})
	require.Equal(t, fiber.StatusCreated, resp.status)

	resp = s.do(nethttp.MethodPost, "/api/cases/", admin, map[string]any{"name": "second"})
	require.Equal(t, fiber.StatusCreated, resp.status)
	second := resp.data()["id"].(string)

	resp = s.do(nethttp.MethodPatch, "/api/cases/"+second+"/move/", admin, map[string]any{"stage_id": hot})
	require.Equal(t, fiber.StatusBadRequest, resp.status)
	assert.EqualValues(t, 1, resp.body["count"])

	resp = s.do(nethttp.MethodDelete, "/api/cases/stages/"+hot+"/", admin, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.status)
	assert.EqualValues(t, 1, resp.body["count"])

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/"+pipelineID+"/stages/", admin, map[string]any{"name": "Cold"})
	require.Equal(t, fiber.StatusCreated, resp.status)
	cold := resp.data()["id"].(string)

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/"+pipelineID+"/stages/reorder/", admin, map[string]any{
		"stage_ids": []string{cold, hot},
	})
	require.Equal(t, fiber.StatusOK, resp.status)
	list := resp.body["data"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, cold, list[0].(map[string]any)["id"])

	resp = s.do(nethttp.MethodPut, "/api/cases/stages/"+cold+"/", admin, map[string]any{"color": "blue"})
	assert.Equal(t, fiber.StatusBadRequest, resp.status)

	resp = s.do(nethttp.MethodDelete, "/api/cases/stages/"+cold+"/", admin, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.status)

	resp = s.do(nethttp.MethodPost, "/api/cases/pipelines/"+pipelineID+"/renumber/", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	assert.EqualValues(t, 1, resp.data()["renumbered"])
}
