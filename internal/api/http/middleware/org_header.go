package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/reqctx"
)

const (
	HeaderOrgID = "X-Org-ID"
	LocalsActor = "actor"
)

// OrgHeader reads the organization from the X-Org-ID header, checks that it
// is active and that the authenticated user is an active member of it, and
// stores the resulting model.Actor in Locals. Platform superusers pass
// without a membership.
func OrgHeader(st store.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get(HeaderOrgID)
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Org-ID header is required")
		}
		orgID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Org-ID value")
		}

		claims, ok := ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		ctx := c.Context()
		org, err := st.GetOrganization(ctx, orgID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && !org.IsActive) {
			return fiber.NewError(fiber.StatusNotFound, "organization not found")
		}
		if err != nil {
			return err
		}

		user, err := st.GetUser(ctx, claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.ErrUnauthorized
		}
		if err != nil {
			return err
		}

		actor := model.Actor{UserID: user.ID, OrgID: orgID, IsSuperuser: user.IsSuperuser}

		m, err := st.GetMember(ctx, orgID, user.ID)
		switch {
		case err == nil && m.IsActive:
			actor.Role = m.Role
		case err == nil, errors.Is(err, store.ErrNotFound):
			if !user.IsSuperuser {
				return fiber.NewError(fiber.StatusForbidden, "not a member of this organization")
			}
		default:
			return err
		}

		c.Locals(LocalsActor, actor)
		c.SetContext(reqctx.WithOrgID(ctx, orgID))
		return c.Next()
	}
}

func ActorFromFiber(c fiber.Ctx) (model.Actor, bool) {
	a, ok := c.Locals(LocalsActor).(model.Actor)
	return a, ok
}
