package service

import (
	"context"
	"time"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo   ports.AuditRepository
	hasher *ClientHasher
	log    zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, hasher *ClientHasher, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, hasher: hasher, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
// The raw client IP is replaced by its keyed hash before the entry leaves the caller.
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	if s.hasher != nil {
		entry.ClientHash = s.hasher.Hash(entry.ClientIP)
	}
	entry.ClientIP = ""

	ctx = context.WithoutCancel(ctx)
	go func() {
		s.log.Info().
			Str("request_id", entry.RequestID).
			Str("action", string(entry.Action)).
			Str("amount", entry.Amount).
			Int64("note_count", entry.NoteCount).
			Int("status", entry.StatusCode).
			Str("error_type", entry.ErrorType).
			Str("client", entry.ClientHash).
			Msg("audit")

		if s.repo == nil {
			return
		}
		writeCtx, cancel := context.WithTimeout(ctx, auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(writeCtx, entry); err != nil {
			s.log.Warn().Err(err).Str("request_id", entry.RequestID).Msg("failed to persist audit log")
		}
	}()
}
