package cases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

func TestPolicyCan(t *testing.T) {
	f := newFixture(t)
	p := NewPolicy(f.authz)
	superuser := model.Actor{UserID: uuid.New(), OrgID: f.org, IsSuperuser: true}
	stranger := model.Actor{UserID: uuid.New(), OrgID: f.org, Role: "GUEST"}

	tests := []struct {
		name  string
		actor model.Actor
		res   authorize.Resource
		act   authorize.Action
		want  bool
	}{
		{"admin creates pipelines", f.admin, authorize.ResourcePipeline, authorize.ActionCreate, true},
		{"user reads pipelines", f.user, authorize.ResourcePipeline, authorize.ActionRead, true},
		{"user cannot create stages", f.user, authorize.ResourceStage, authorize.ActionCreate, false},
		{"user moves cases", f.user, authorize.ResourceCase, authorize.ActionUpdate, true},
		{"superuser does anything", superuser, authorize.ResourceStage, authorize.ActionDelete, true},
		{"unknown role is denied", stranger, authorize.ResourceCase, authorize.ActionRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Can(f.ctx, tt.actor, tt.res, tt.act)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyVisibility(t *testing.T) {
	f := newFixture(t)
	p := NewPolicy(f.authz)

	assert.Nil(t, p.Visibility(f.admin))
	assert.Nil(t, p.Visibility(model.Actor{IsSuperuser: true}))
	require.NotNil(t, p.Visibility(f.user))
	assert.Equal(t, f.user.UserID, *p.Visibility(f.user))

	c := &model.Case{CreatedBy: f.user.UserID, Assignees: []uuid.UUID{f.other.UserID}}
	assert.True(t, p.CanSee(f.user, c))
	assert.True(t, p.CanSee(f.other, c))
	assert.True(t, p.CanSee(f.admin, c))
	assert.False(t, p.CanSee(f.member(model.RoleUser), c))
}

func TestPolicyDenyOverride(t *testing.T) {
	f := newFixture(t)
	p := NewPolicy(f.authz)

	_, err := f.authz.AddPermission(f.ctx, authorize.RoleOrgUser, authorize.OrgDomain(f.org.String()),
		authorize.ResourceCase, authorize.ActionUpdate, authorize.EffectDeny)
	require.NoError(t, err)

	c := f.newCase(f.user, "mine", nil)
	_, err = f.move(f.user, c.ID, MoveRequest{Status: ptr(model.StatusPending)})
	assert.ErrorIs(t, err, ErrCaseAccessDenied)

	ok, err := p.Can(f.ctx, f.admin, authorize.ResourceCase, authorize.ActionUpdate)
	require.NoError(t, err)
	assert.True(t, ok)
}
