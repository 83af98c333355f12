package authorize

import (
	"context"
	"log/slog"
)

// DefaultPolicies is the baseline RBAC policy set.
func DefaultPolicies() []PermissionPolicy {
	return []PermissionPolicy{
		// Superuser: god mode
		{RolePlatformSuperuser, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Org admins manage the whole board
		{RoleOrgAdmin, WildcardDomain, ResourcePipeline, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceStage, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceCase, ActionManage, EffectAllow},

		// Org users see the configuration and work their cases
		{RoleOrgUser, WildcardDomain, ResourcePipeline, ActionRead, EffectAllow},
		{RoleOrgUser, WildcardDomain, ResourceStage, ActionRead, EffectAllow},
		{RoleOrgUser, WildcardDomain, ResourceCase, ActionRead, EffectAllow},
		{RoleOrgUser, WildcardDomain, ResourceCase, ActionList, EffectAllow},
		{RoleOrgUser, WildcardDomain, ResourceCase, ActionCreate, EffectAllow},
		{RoleOrgUser, WildcardDomain, ResourceCase, ActionUpdate, EffectAllow},
	}
}

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := DefaultPolicies()
	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}
