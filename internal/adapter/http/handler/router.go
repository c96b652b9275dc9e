package handler

import (
	"fmt"

	"atm-withdrawal/internal/adapter/http/middleware"
	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/pkg/apperror"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Calculator     ports.NoteCalculator
	Currency       domain.Currency
	MaxAmount      decimal.NullDecimal // invalid = no cap
	AllowedOrigins []string
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The gin mode is left to the caller.
func SetupRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeaders(middleware.DefaultHeadersConfig()))
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound("Route"))
	})

	// Readiness (pings Redis and PostgreSQL when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := NewSwaggerHandler(deps.OpenAPISpec)
	docs := r.Group("/swagger")
	{
		docs.GET("", swagger.UI)
		docs.GET("/spec", swagger.Spec)
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Audit runs outside the rate limiter so throttled requests are recorded too.
	audit := func(c *gin.Context) { c.Next() }
	if deps.AuditSvc != nil {
		audit = middleware.AuditLog(deps.AuditSvc)
	}

	h := NewWithdrawalHandler(deps.Calculator, deps.Currency, deps.MaxAmount, deps.Logger)

	api := r.Group("/api/withdrawal")
	{
		api.POST("", audit, rl(middleware.GroupWithdrawal), h.Withdraw)
		api.GET("/health", Liveness)
		api.GET("/denominations", h.Denominations)
	}

	// Server-rendered form client
	r.GET("/", h.FormPage)
	r.POST("/", audit, rl(middleware.GroupForm), h.FormSubmit)

	return r, nil
}
