package middleware

import (
	"context"
	"customerRenewal/pkg/logger"
	"customerRenewal/pkg/metrics"
	jsonres "customerRenewal/pkg/response"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit limits requests per client IP. When the limiter itself fails the
// request is let through so a Redis outage does not take evaluations down.
func RateLimit(limiter RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			allowed, retryAfter, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				logger.Error("Rate limiter unavailable", "error", err)
				return next(c)
			}

			if !allowed {
				metrics.RateLimited.Inc()
				seconds := int(math.Ceil(retryAfter.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return c.JSON(http.StatusTooManyRequests, jsonres.Error(
					"TOO_MANY_REQUESTS", "Rate limit exceeded", map[string]int{"retry_after_seconds": seconds},
				))
			}

			return next(c)
		}
	}
}
