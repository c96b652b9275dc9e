package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"atm-withdrawal/internal/core/domain"

	"github.com/shopspring/decimal"
)

// NoteCalculator maps a requested amount to a minimal note breakdown.
// Implementations are pure and safe for concurrent use.
type NoteCalculator interface {
	// Calculate returns the notes to dispense, or a *domain.WithdrawalError
	// matching domain.ErrInvalidArgument or domain.ErrNoteUnavailable.
	Calculate(amount decimal.NullDecimal) (*domain.WithdrawalResult, error)
	// Denominations returns the note set the calculator dispenses from.
	Denominations() domain.DenominationSet
}

// AuditService records withdrawal requests.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
