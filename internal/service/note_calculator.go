package service

import (
	"math"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"

	"github.com/shopspring/decimal"
)

var maxNoteCount = decimal.NewFromInt(math.MaxInt64)

// NoteCalculator dispenses the minimum number of notes using greedy
// reduction over a descending denomination set.
//
// Greedy selection is only minimal for canonical sets such as
// {100, 50, 20, 10}. For an arbitrary set like {4, 3, 1} greedy picks
// 4+1+1 for 6 where 3+3 is optimal, so NewNoteCalculator refuses any set
// that fails the canonicality check.
type NoteCalculator struct {
	denominations domain.DenominationSet
	notes         []decimal.Decimal
}

var _ ports.NoteCalculator = (*NoteCalculator)(nil)

// NewNoteCalculator creates a calculator owning the given denomination set.
func NewNoteCalculator(denominations domain.DenominationSet) (*NoteCalculator, error) {
	if err := VerifyCanonical(denominations); err != nil {
		return nil, err
	}
	return &NoteCalculator{
		denominations: denominations,
		notes:         denominations.Values(),
	}, nil
}

// Denominations returns the note set the calculator dispenses from.
func (c *NoteCalculator) Denominations() domain.DenominationSet {
	return c.denominations
}

// Calculate maps amount to its minimal note breakdown.
//
// An absent or zero amount dispenses nothing. A negative amount fails with
// an InvalidArgument error, an amount with no exact decomposition fails with
// a NoteUnavailable error carrying the requested amount.
//
// Amounts are otherwise unbounded, with one exception: an amount whose note
// count would not fit in an int64 is rejected as InvalidArgument rather than
// dispensed, since NoteBundle counts are int64.
func (c *NoteCalculator) Calculate(amount decimal.NullDecimal) (*domain.WithdrawalResult, error) {
	if !amount.Valid || amount.Decimal.IsZero() {
		return domain.NewWithdrawalResult(), nil
	}

	requested := amount.Decimal
	if requested.IsNegative() {
		return nil, domain.NewInvalidArgumentError(requested)
	}

	bundles := make([]domain.NoteBundle, 0, len(c.notes))
	remaining := requested
	taken := decimal.Zero

	for _, note := range c.notes {
		if remaining.LessThan(note) {
			continue
		}
		count, rest := remaining.QuoRem(note, 0)
		taken = taken.Add(count)
		if taken.GreaterThan(maxNoteCount) {
			return nil, domain.NewAmountOutOfRangeError(requested)
		}
		bundles = append(bundles, domain.NoteBundle{Denomination: note, Count: count.IntPart()})
		remaining = rest
	}

	if remaining.IsPositive() {
		return nil, domain.NewNoteUnavailableError(requested, c.denominations)
	}

	return domain.NewWithdrawalResultFromBundles(bundles), nil
}
