package cases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

// Policy is the single authorization decision point for the board. Role
// permissions come from casbin; case visibility is decided here.
type Policy struct {
	authz authorize.IAuthorization
}

func NewPolicy(authz authorize.IAuthorization) *Policy {
	return &Policy{authz: authz}
}

// subject maps an actor to the casbin subject and domain it is checked in.
func subject(a model.Actor) (authorize.PolicySubject, authorize.Domain) {
	if a.IsSuperuser {
		return authorize.PolicySubject(authorize.RolePlatformSuperuser), authorize.DomainSys
	}
	role, ok := authorize.MemberRoleToRBACRole[a.Role]
	if !ok {
		return "", ""
	}
	return authorize.PolicySubject(role), authorize.OrgDomain(a.OrgID.String())
}

// Can reports whether a may perform act on res inside its organization.
func (p *Policy) Can(ctx context.Context, a model.Actor, res authorize.Resource, act authorize.Action) (bool, error) {
	sub, dom := subject(a)
	if sub == "" {
		return false, nil
	}
	ok, err := p.authz.Enforce(ctx, sub, dom, res, act)
	if err != nil {
		return false, fmt.Errorf("enforce %s/%s: %w", res, act, err)
	}
	return ok, nil
}

// Require returns deny when a may not perform act on res.
func (p *Policy) Require(ctx context.Context, a model.Actor, res authorize.Resource, act authorize.Action, deny error) error {
	ok, err := p.Can(ctx, a, res, act)
	if err != nil {
		return err
	}
	if !ok {
		return deny
	}
	return nil
}

// RequireAdmin gates configuration changes.
func (p *Policy) RequireAdmin(ctx context.Context, a model.Actor, res authorize.Resource, act authorize.Action) error {
	return p.Require(ctx, a, res, act, ErrAdminRequired)
}

// SeesAll reports whether a sees every case of the organization.
func (p *Policy) SeesAll(a model.Actor) bool {
	return a.IsSuperuser || a.Role == model.RoleAdmin
}

// Visibility returns the user the case set must be restricted to, or nil.
func (p *Policy) Visibility(a model.Actor) *uuid.UUID {
	if p.SeesAll(a) {
		return nil
	}
	id := a.UserID
	return &id
}

// CanSee applies the visibility rule to a single case.
func (p *Policy) CanSee(a model.Actor, c *model.Case) bool {
	return p.SeesAll(a) || c.CreatedBy == a.UserID || c.IsAssignee(a.UserID)
}

// AuthorizeCase checks that a may act on a case it already loaded. Unlike
// the board, which filters silently, this is an explicit denial.
func (p *Policy) AuthorizeCase(ctx context.Context, a model.Actor, c *model.Case, act authorize.Action) error {
	if !p.CanSee(a, c) {
		return ErrCaseAccessDenied
	}
	return p.Require(ctx, a, authorize.ResourceCase, act, ErrCaseAccessDenied)
}
