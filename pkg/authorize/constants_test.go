package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid org domain", Domain("org:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"org without uuid", Domain("org:"), false},
		{"org with invalid uuid", Domain("org:invalid-uuid"), false},
		{"unknown prefix", Domain("project:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestOrgDomain(t *testing.T) {
	orgID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("org:550e8400-e29b-41d4-a716-446655440000")

	if result := OrgDomain(orgID); result != expected {
		t.Errorf("OrgDomain(%q) = %q, want %q", orgID, result, expected)
	}
}

func TestMemberRoleToRBACRole(t *testing.T) {
	for member, role := range MemberRoleToRBACRole {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("membership role %q maps to unknown role %q", member, role)
		}
	}
	if MemberRoleToRBACRole[MemberRoleAdmin] != RoleOrgAdmin {
		t.Errorf("ADMIN should map to %q", RoleOrgAdmin)
	}
}
