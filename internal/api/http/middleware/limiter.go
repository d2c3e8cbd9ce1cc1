package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis builds a sliding-window rate limiter backed by Redis so
// the limit holds across replicas.
func NewLimiterWithRedis(rdb *redis.Client, requestsPerMinute int) fiber.Handler {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}

	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		Max:               requestsPerMinute,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
