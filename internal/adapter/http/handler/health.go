package handler

import (
	"context"
	"net/http"
	"time"

	"atm-withdrawal/internal/adapter/http/dto"
	"atm-withdrawal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck handles GET /health, pinging every configured dependency
// concurrently. Any failure turns the whole response into 503 degraded.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		results := make([]dto.DependencyStatus, len(checkers))
		var g errgroup.Group
		for i, checker := range checkers {
			i, checker := i, checker
			g.Go(func() error {
				if err := checker.Ping(ctx); err != nil {
					results[i] = dto.DependencyStatus{Status: "unhealthy", Error: err.Error()}
					return err
				}
				results[i] = dto.DependencyStatus{Status: "healthy"}
				return nil
			})
		}
		allHealthy := g.Wait() == nil

		deps := make(map[string]dto.DependencyStatus, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, dto.ReadinessResponse{Status: status, Dependencies: deps})
	}
}
