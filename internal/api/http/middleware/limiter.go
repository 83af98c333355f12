package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/crm_backend/config"
)

// NewLimiterWithRedis is a sliding window limiter shared by every instance
// through Redis.
func NewLimiterWithRedis(rdb *goredis.Client, cfg config.RateLimitConfig) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)

	limit := cfg.RequestsPerWindow
	if limit <= 0 {
		limit = 60
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = 30 * time.Second
	}

	return limiter.New(limiter.Config{
		Storage: storage,

		Max:               limit,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
