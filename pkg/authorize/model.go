package authorize

import (
	"github.com/casbin/casbin/v2/model"
)

// DefaultModel is the RBAC-with-domains model used when no model file is
// configured. Subjects are roles; a policy row may use "*" for the domain,
// the resource or the action, and "manage" on a resource grants every action.
const DefaultModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (r.sub == p.sub || g(r.sub, p.sub, r.dom)) && (p.dom == "*" || r.dom == p.dom) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act || p.act == "manage")
`

// loadModel reads the model at path, falling back to DefaultModel.
func loadModel(path string) (model.Model, error) {
	if path == "" {
		return model.NewModelFromString(DefaultModel)
	}
	return model.NewModelFromFile(path)
}
