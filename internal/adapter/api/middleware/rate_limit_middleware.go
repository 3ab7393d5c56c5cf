package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"playvault/internal/infrastructure/ratelimit"
)

// RateLimit throttles an action per caller. Authenticated callers are keyed
// by uid, anonymous ones by client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, retryAfter := limiter.Allow(key, action)
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success": false,
					"error": map[string]interface{}{
						"code":        "TOO_MANY_REQUESTS",
						"message":     "Rate limit exceeded",
						"retry_after": int(retryAfter.Seconds()),
					},
				})
			}

			return next(c)
		}
	}
}
