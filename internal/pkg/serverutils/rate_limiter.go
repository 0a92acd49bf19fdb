package serverutils

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per client IP over a fixed window.
// Counters live in Redis when a client is configured; otherwise they fall
// back to an in-process cache, which is good enough for single instances.
type RateLimiter struct {
	redisClient *redis.Client
	local       *cache.Cache
	maxRequests int
	window      time.Duration
}

func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		local:       cache.New(window, 2*window),
		maxRequests: maxRequests,
		window:      window,
	}
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s", ctx.IP())

		count, err := rl.increment(ctx.UserContext(), key)
		if err != nil {
			// Redis being down should not take the API with it
			count = rl.incrementLocal(key)
		}

		if count > int64(rl.maxRequests) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(429, "Too many requests, slow down"))
		}
		return ctx.Next()
	}
}

func (rl *RateLimiter) increment(ctx context.Context, key string) (int64, error) {
	if rl.redisClient == nil {
		return rl.incrementLocal(key), nil
	}

	pipe := rl.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (rl *RateLimiter) incrementLocal(key string) int64 {
	count, err := rl.local.IncrementInt64(key, 1)
	if err != nil {
		rl.local.Set(key, int64(1), rl.window)
		return 1
	}
	return count
}
