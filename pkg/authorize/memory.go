package authorize

import (
	"fmt"
	"strings"

	casbin "github.com/casbin/casbin/v2"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

// PolicyCSV renders policies in Casbin's CSV policy format.
func PolicyCSV(policies []PermissionPolicy) string {
	var b strings.Builder
	for _, p := range policies {
		fmt.Fprintf(&b, "p, %s, %s, %s, %s, %s\n", p.Subject, p.Domain, p.Object, p.Action, p.Effect)
	}
	return b.String()
}

// NewMemoryEnforcer builds an enforcer holding DefaultPolicies in memory.
// It backs the memory store and tests; nothing is persisted.
func NewMemoryEnforcer(modelPath string) (*casbin.DistributedEnforcer, error) {
	m, err := loadModel(modelPath)
	if err != nil {
		return nil, err
	}

	a := stringadapter.NewAdapter(PolicyCSV(DefaultPolicies()))
	e, err := casbin.NewDistributedEnforcer(m, a)
	if err != nil {
		return nil, err
	}
	e.EnableAutoSave(false)
	return e, nil
}
