package authorize

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// ActionManage grants every other action on the resource.
	ActionManage Action = "manage"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	ResourcePipeline Resource = "pipeline"
	ResourceStage    Resource = "stage"
	ResourceCase     Resource = "case"
)

var KnownResources = map[Resource]struct{}{
	ResourcePipeline: {}, ResourceStage: {}, ResourceCase: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// Roles are the policy subjects. Organization roles come from the membership
// record, the platform role from the user's superuser flag.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperuser Role = "role:platform:superuser"

	// Organization roles (domain = org:<uuid>)
	RoleOrgAdmin Role = "role:org:admin"
	RoleOrgUser  Role = "role:org:user"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperuser: {},
	RoleOrgAdmin:          {},
	RoleOrgUser:           {},
}

// Membership role strings (stored in memberships.role)
const (
	MemberRoleAdmin = "ADMIN"
	MemberRoleUser  = "USER"
)

// MemberRoleToRBACRole maps membership roles to Casbin roles.
var MemberRoleToRBACRole = map[string]Role{
	MemberRoleAdmin: RoleOrgAdmin,
	MemberRoleUser:  RoleOrgUser,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

const (
	DomainPrefixOrg Domain = "org:"
)

const (
	WildcardDomain Domain = "*"
)

func OrgDomain(orgID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixOrg, orgID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}
	id, ok := strings.CutPrefix(string(d), string(DomainPrefixOrg))
	if !ok {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: a role.
type PolicySubject string

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
