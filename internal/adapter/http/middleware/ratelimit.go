package middleware

import (
	"fmt"
	"strconv"
	"time"

	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/pkg/apperror"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Endpoint groups with their own counters.
const (
	GroupWithdrawal = "withdrawal"
	GroupForm       = "form"
)

// RateLimitRules applies one per-client rule to every withdrawal entry point.
func RateLimitRules(limit int64, window time.Duration) map[string]RateLimitRule {
	rule := RateLimitRule{Limit: limit, Window: window}
	return map[string]RateLimitRule{
		GroupWithdrawal: rule,
		GroupForm:       rule,
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through (degraded mode).
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Abort(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}
