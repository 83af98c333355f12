package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	goredis "github.com/redis/go-redis/v9"

	pasetotoken "github.com/Alijeyrad/crm_backend/pkg/paseto"
	"github.com/Alijeyrad/crm_backend/pkg/redis"
	"github.com/Alijeyrad/crm_backend/pkg/reqctx"
)

const LocalsClaims = "auth.claims"

// AuthRequired validates a Bearer PASETO access token. When rdb is set, a
// token carrying a session id is only accepted while its session key lives
// in Redis.
// On success, stores *pasetotoken.Claims in c.Locals(LocalsClaims).
func AuthRequired(mgr *pasetotoken.Manager, rdb goredis.Cmdable) fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := pasetotoken.BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		if claims.SessionID != nil && rdb != nil {
			live, err := redis.SessionActive(c.Context(), rdb, *claims.SessionID)
			if err != nil {
				slog.Warn("auth: session lookup failed", "error", err)
				return fiber.ErrUnauthorized
			}
			if !live {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(LocalsClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

func ClaimsFromFiber(c fiber.Ctx) (*pasetotoken.Claims, bool) {
	claims, ok := c.Locals(LocalsClaims).(*pasetotoken.Claims)
	return claims, ok && claims != nil
}
