package postgres

import (
	"context"
	"fmt"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO withdrawal_audit_logs (id, request_id, action, amount, note_count, status_code, error_type, client_hash, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, '')::numeric, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9)`,
		entry.ID, entry.RequestID, string(entry.Action), entry.Amount,
		entry.NoteCount, entry.StatusCode, entry.ErrorType, entry.ClientHash, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting withdrawal audit log: %w", err)
	}
	return nil
}
