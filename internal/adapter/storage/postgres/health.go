package postgres

import (
	"context"

	"atm-withdrawal/internal/core/ports"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

var _ ports.HealthChecker = (*HealthCheck)(nil)

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping runs a trivial query so a reachable server with a broken session still fails.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var one int
	return h.pool.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
