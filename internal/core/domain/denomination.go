package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DenominationSet is an immutable, strictly descending sequence of positive
// note values. The greedy note selection depends on the descending order.
type DenominationSet struct {
	values []decimal.Decimal
}

// DefaultDenominations returns the standard {100, 50, 20, 10} note set.
func DefaultDenominations() DenominationSet {
	return DenominationSet{values: []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(50),
		decimal.NewFromInt(20),
		decimal.NewFromInt(10),
	}}
}

// NewDenominationSet validates the given values and returns them sorted in
// descending order. Values must be positive and distinct.
func NewDenominationSet(values ...decimal.Decimal) (DenominationSet, error) {
	if len(values) == 0 {
		return DenominationSet{}, fmt.Errorf("%w: at least one denomination is required", ErrInvalidDenominations)
	}

	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].GreaterThan(sorted[j]) })

	for i, v := range sorted {
		if !v.IsPositive() {
			return DenominationSet{}, fmt.Errorf("%w: %s is not positive", ErrInvalidDenominations, v)
		}
		if i > 0 && v.Equal(sorted[i-1]) {
			return DenominationSet{}, fmt.Errorf("%w: %s is listed twice", ErrInvalidDenominations, v)
		}
	}

	return DenominationSet{values: sorted}, nil
}

// ParseDenominations builds a DenominationSet from decimal strings such as
// the ones found in configuration ("100", "50", "0.50").
func ParseDenominations(raw []string) (DenominationSet, error) {
	values := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return DenominationSet{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidDenominations, s)
		}
		values = append(values, v)
	}
	return NewDenominationSet(values...)
}

// Values returns a copy of the denominations, largest first.
func (s DenominationSet) Values() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of denominations.
func (s DenominationSet) Len() int {
	return len(s.values)
}

// Largest returns the biggest note value. It panics on an empty set.
func (s DenominationSet) Largest() decimal.Decimal {
	return s.values[0]
}

// Smallest returns the smallest note value. It panics on an empty set.
func (s DenominationSet) Smallest() decimal.Decimal {
	return s.values[len(s.values)-1]
}

// Format renders the set with the given amount formatter, e.g. "100, 50, 20, 10".
func (s DenominationSet) Format(format AmountFormatter) string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = format(v)
	}
	return strings.Join(parts, ", ")
}

func (s DenominationSet) String() string {
	return s.Format(PlainAmount)
}
