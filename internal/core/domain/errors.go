package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrNoteUnavailable           = errors.New("note unavailable")
	ErrInvalidDenominations      = errors.New("invalid denomination set")
	ErrNonCanonicalDenominations = errors.New("denomination set is not canonical")
)

// FailureKind tags the two expected outcomes of a rejected withdrawal.
type FailureKind string

const (
	FailureInvalidArgument FailureKind = "InvalidArgument"
	FailureNoteUnavailable FailureKind = "NoteUnavailable"
)

type invalidReason int

const (
	reasonNegative invalidReason = iota
	reasonOutOfRange
)

// WithdrawalError is returned by the note calculator when a request is
// rejected. It matches ErrInvalidArgument or ErrNoteUnavailable via errors.Is.
type WithdrawalError struct {
	Kind FailureKind
	// Amount is the originally requested amount, never the remainder.
	Amount decimal.Decimal

	available DenominationSet
	reason    invalidReason
}

// NewInvalidArgumentError reports a negative requested amount.
func NewInvalidArgumentError(amount decimal.Decimal) *WithdrawalError {
	return &WithdrawalError{Kind: FailureInvalidArgument, Amount: amount, reason: reasonNegative}
}

// NewAmountOutOfRangeError reports an amount whose note count does not fit in an int64.
func NewAmountOutOfRangeError(amount decimal.Decimal) *WithdrawalError {
	return &WithdrawalError{Kind: FailureInvalidArgument, Amount: amount, reason: reasonOutOfRange}
}

// NewNoteUnavailableError reports an amount with no exact decomposition.
func NewNoteUnavailableError(amount decimal.Decimal, available DenominationSet) *WithdrawalError {
	return &WithdrawalError{Kind: FailureNoteUnavailable, Amount: amount, available: available}
}

func (e *WithdrawalError) Error() string {
	return e.Describe(PlainAmount)
}

// Describe renders the user-facing message with amounts formatted by format.
func (e *WithdrawalError) Describe(format AmountFormatter) string {
	switch {
	case e.Kind == FailureNoteUnavailable:
		return fmt.Sprintf("Cannot dispense %s. The amount cannot be formed with available notes (%s).",
			format(e.Amount), e.available.Format(format))
	case e.reason == reasonOutOfRange:
		return fmt.Sprintf("Amount exceeds the dispensable range. Provided: %s", format(e.Amount))
	default:
		return fmt.Sprintf("Amount cannot be negative. Provided: %s", format(e.Amount))
	}
}

func (e *WithdrawalError) Is(target error) bool {
	switch e.Kind {
	case FailureInvalidArgument:
		return target == ErrInvalidArgument
	case FailureNoteUnavailable:
		return target == ErrNoteUnavailable
	}
	return false
}
