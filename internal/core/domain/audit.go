package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the outcome of an audited withdrawal request.
type AuditAction string

const (
	AuditActionWithdrawalDispensed AuditAction = "WITHDRAWAL_DISPENSED"
	AuditActionWithdrawalRejected  AuditAction = "WITHDRAWAL_REJECTED"
)

// AuditLog records a single withdrawal request and its outcome.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	RequestID  string      `json:"request_id"`
	Action     AuditAction `json:"action"`
	Amount     string      `json:"amount,omitempty"` // decimal string as requested
	NoteCount  int64       `json:"note_count"`
	StatusCode int         `json:"status_code"`
	ErrorType  string      `json:"error_type,omitempty"`
	ClientIP   string      `json:"-"`           // raw, never persisted
	ClientHash string      `json:"client_hash"` // keyed hash of ClientIP
	CreatedAt  time.Time   `json:"created_at"`
}
