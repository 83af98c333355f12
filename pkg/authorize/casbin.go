package authorize

import (
	"context"
	"errors"
	"fmt"

	casbin "github.com/casbin/casbin/v2"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidArgs = errors.New("invalid authorization arguments")
)

// IAuthorization answers role permission questions for the board. Services
// depend on this, never on casbin directly.
type IAuthorization interface {
	Enforce(ctx context.Context, subject PolicySubject, domain Domain, object Resource, action Action) (bool, error)
	// MustEnforce returns ErrForbidden when the request is denied.
	MustEnforce(ctx context.Context, subject PolicySubject, domain Domain, object Resource, action Action) error
	AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error)
	Raw() *casbin.DistributedEnforcer
}

type Authorization struct {
	enforcer *casbin.DistributedEnforcer
}

// NewAuthorization loads the policy of an already configured enforcer.
func NewAuthorization(e *casbin.DistributedEnforcer) (IAuthorization, error) {
	if e == nil {
		return nil, invalidArgs("enforcer is nil")
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	return &Authorization{enforcer: e}, nil
}

func invalidArgs(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgs, fmt.Sprintf(format, args...))
}

func checkTarget(domain Domain, object Resource, action Action) error {
	if !IsValidDomain(domain) {
		return invalidArgs("invalid domain %q", domain)
	}
	if _, ok := KnownResources[object]; !ok && object != WildcardResource {
		return invalidArgs("unknown resource %q", object)
	}
	if _, ok := KnownActions[action]; !ok && action != WildcardAction {
		return invalidArgs("unknown action %q", action)
	}
	return nil
}

func (a *Authorization) Raw() *casbin.DistributedEnforcer { return a.enforcer }

func (a *Authorization) Enforce(_ context.Context, subject PolicySubject, domain Domain, object Resource, action Action) (bool, error) {
	if subject == "" {
		return false, invalidArgs("subject is empty")
	}
	if err := checkTarget(domain, object, action); err != nil {
		return false, err
	}

	// Platform superusers are never subject to organization policy.
	if subject == PolicySubject(RolePlatformSuperuser) && domain == DomainSys {
		return true, nil
	}
	return a.enforcer.Enforce(string(subject), string(domain), string(object), string(action))
}

func (a *Authorization) MustEnforce(ctx context.Context, subject PolicySubject, domain Domain, object Resource, action Action) error {
	return mustEnforce(ctx, a, subject, domain, object, action)
}

func mustEnforce(ctx context.Context, az IAuthorization, subject PolicySubject, domain Domain, object Resource, action Action) error {
	allowed, err := az.Enforce(ctx, subject, domain, object, action)
	switch {
	case err != nil:
		return err
	case !allowed:
		return ErrForbidden
	}
	return nil
}

// AddPermission stores one p rule: role, domain, resource, action, effect.
func (a *Authorization) AddPermission(_ context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	if _, ok := KnownRoles[role]; !ok && role != WildcardRole {
		return false, invalidArgs("unknown role %q", role)
	}
	if err := checkTarget(domain, object, action); err != nil {
		return false, err
	}
	if effect != EffectAllow && effect != EffectDeny {
		return false, invalidArgs("invalid effect %q", effect)
	}
	return a.enforcer.AddPolicy(string(role), string(domain), string(object), string(action), string(effect))
}
