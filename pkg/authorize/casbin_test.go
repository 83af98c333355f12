package authorize

import (
	"bytes"
	"context"
	"log/slog"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	casbin "github.com/casbin/casbin/v2"

	"github.com/Alijeyrad/crm_backend/pkg/reqctx"
)

const testOrg = "550e8400-e29b-41d4-a716-446655440000"

func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	e, err := NewMemoryEnforcer("")
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("expected ErrInvalidArgs, got %v", err)
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		auth, err := NewAuthorization(createTestEnforcer(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if auth.Raw() == nil {
			t.Error("expected raw enforcer")
		}
	})
}

func TestEnforceDefaultPolicies(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()
	domain := OrgDomain(testOrg)

	tests := []struct {
		name     string
		subject  Role
		resource Resource
		action   Action
		want     bool
	}{
		{"admin manages pipelines", RoleOrgAdmin, ResourcePipeline, ActionDelete, true},
		{"admin manages stages", RoleOrgAdmin, ResourceStage, ActionUpdate, true},
		{"admin moves cases", RoleOrgAdmin, ResourceCase, ActionUpdate, true},
		{"user reads pipelines", RoleOrgUser, ResourcePipeline, ActionRead, true},
		{"user cannot create pipelines", RoleOrgUser, ResourcePipeline, ActionCreate, false},
		{"user cannot delete stages", RoleOrgUser, ResourceStage, ActionDelete, false},
		{"user updates cases", RoleOrgUser, ResourceCase, ActionUpdate, true},
		{"user cannot delete cases", RoleOrgUser, ResourceCase, ActionDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, PolicySubject(tt.subject), domain, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnforceInvalidArgs(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()
	domain := OrgDomain(testOrg)
	sub := PolicySubject(RoleOrgAdmin)

	tests := []struct {
		name     string
		subject  PolicySubject
		domain   Domain
		resource Resource
		action   Action
	}{
		{"empty subject", "", domain, ResourceCase, ActionRead},
		{"invalid domain", sub, Domain("invalid"), ResourceCase, ActionRead},
		{"unknown resource", sub, domain, Resource("invoice"), ActionRead},
		{"unknown action", sub, domain, ResourceCase, Action("approve")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("expected ErrInvalidArgs, got %v", err)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()
	domain := OrgDomain(testOrg)

	t.Run("returns nil when allowed", func(t *testing.T) {
		if err := auth.MustEnforce(ctx, PolicySubject(RoleOrgUser), domain, ResourceCase, ActionRead); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, PolicySubject(RoleOrgUser), domain, ResourceStage, ActionCreate)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestSuperuserBypass(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()

	ok, err := auth.Enforce(ctx, PolicySubject(RolePlatformSuperuser), DomainSys, ResourcePipeline, ActionDelete)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("superuser should be allowed")
	}
}

func TestAddPermissionDenyOverrides(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()
	domain := OrgDomain(testOrg)

	added, err := auth.AddPermission(ctx, RoleOrgUser, domain, ResourceCase, ActionUpdate, EffectDeny)
	if err != nil || !added {
		t.Fatalf("AddPermission() = %v, %v", added, err)
	}

	ok, _ := auth.Enforce(ctx, PolicySubject(RoleOrgUser), domain, ResourceCase, ActionUpdate)
	if ok {
		t.Error("deny rule should win in its domain")
	}

	other := OrgDomain("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	ok, _ = auth.Enforce(ctx, PolicySubject(RoleOrgUser), other, ResourceCase, ActionUpdate)
	if !ok {
		t.Error("deny rule must not leak into another domain")
	}
}

func TestAddPermissionValidation(t *testing.T) {
	auth, _ := NewAuthorization(createTestEnforcer(t))
	ctx := context.Background()

	cases := []PermissionPolicy{
		{Role("role:unknown"), DomainSys, ResourceCase, ActionRead, EffectAllow},
		{RoleOrgUser, Domain("bogus"), ResourceCase, ActionRead, EffectAllow},
		{RoleOrgUser, DomainSys, ResourceCase, ActionRead, PolicyEffect("maybe")},
	}
	for _, p := range cases {
		if _, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect); !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("AddPermission(%v) expected ErrInvalidArgs, got %v", p, err)
		}
	}
}

func TestModelFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.conf")
	if err := os.WriteFile(path, []byte(DefaultModel), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	e, err := NewMemoryEnforcer(path)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	ok, err := e.Enforce(string(RoleOrgAdmin), string(OrgDomain(testOrg)), string(ResourceStage), string(ActionCreate))
	if err != nil || !ok {
		t.Errorf("Enforce() = %v, %v", ok, err)
	}
}

func TestPolicyCSV(t *testing.T) {
	csv := PolicyCSV([]PermissionPolicy{{RoleOrgUser, WildcardDomain, ResourceCase, ActionRead, EffectAllow}})
	want := "p, role:org:user, *, case, read, allow\n"
	if csv != want {
		t.Errorf("PolicyCSV() = %q, want %q", csv, want)
	}
	if n := strings.Count(PolicyCSV(DefaultPolicies()), "\n"); n != len(DefaultPolicies()) {
		t.Errorf("expected %d lines, got %d", len(DefaultPolicies()), n)
	}
}

func TestAuditedAuthorizationLogsDenials(t *testing.T) {
	base, err := NewAuthorization(createTestEnforcer(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	auth := NewAuditedAuthorization(base, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-42"})
	err = auth.MustEnforce(ctx, PolicySubject(RoleOrgUser), OrgDomain(testOrg), ResourcePipeline, ActionDelete)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{"authz denied", "request_id=req-42", "resource=pipeline"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}

	buf.Reset()
	if err := auth.MustEnforce(ctx, PolicySubject(RoleOrgUser), OrgDomain(testOrg), ResourceCase, ActionRead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("allowed decisions should log below warn, got %q", buf.String())
	}
}
