package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/infrastructure/ratelimit"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/logger"
	"goldenwok/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles the named action per client IP using a token bucket.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, wait := m.limiter.Allow(c.RealIP(), action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s", c.RealIP(), action)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %d seconds", int(wait.Seconds())+1),
				))
			}
			return next(c)
		}
	}
}
