package service

import (
	"fmt"
	"math/big"

	"atm-withdrawal/internal/core/domain"

	"github.com/shopspring/decimal"
)

// maxCanonicalCheckUnits caps the table used by VerifyCanonical.
const maxCanonicalCheckUnits = 1 << 20

// VerifyCanonical reports whether greedy selection yields the minimal note
// count for every amount the set can represent.
//
// If greedy fails anywhere, the smallest failing amount is below the sum of
// the two largest denominations (Kozen & Zaks, 1994), so every amount under
// that bound is compared against an exhaustive minimal-count table.
func VerifyCanonical(set domain.DenominationSet) error {
	if set.Len() == 0 {
		return fmt.Errorf("%w: at least one denomination is required", domain.ErrInvalidDenominations)
	}
	if set.Len() == 1 {
		return nil
	}

	units, unit, err := toUnits(set.Values())
	if err != nil {
		return err
	}

	bound := units[0] + units[1]
	if bound > maxCanonicalCheckUnits {
		return fmt.Errorf("%w: denominations %s span too many units to verify", domain.ErrInvalidDenominations, set)
	}

	best := minimalCounts(units, bound)
	for x := int64(1); x < bound; x++ {
		if greedyCount(units, x) != best[x] {
			amount := unit.Mul(decimal.NewFromInt(x))
			return fmt.Errorf("%w: greedy selection is not minimal for %s with notes %s",
				domain.ErrNonCanonicalDenominations, amount, set)
		}
	}
	return nil
}

// toUnits rescales the denominations to the smallest integer grid shared by
// all of them. unit is the value of one grid step. The size limit applies to
// the reduced grid, so {2000000, 1000000} verifies like {2, 1}.
func toUnits(values []decimal.Decimal) ([]int64, decimal.Decimal, error) {
	exp := values[0].Exponent()
	for _, v := range values[1:] {
		if v.Exponent() < exp {
			exp = v.Exponent()
		}
	}

	scaled := make([]*big.Int, len(values))
	g := new(big.Int)
	for i, v := range values {
		scaled[i] = v.Shift(-exp).BigInt()
		g.GCD(nil, nil, g, scaled[i])
	}

	units := make([]int64, len(values))
	for i, s := range scaled {
		q := new(big.Int).Quo(s, g)
		if !q.IsInt64() || q.Int64() > maxCanonicalCheckUnits {
			return nil, decimal.Zero, fmt.Errorf("%w: denomination %s is too large to verify", domain.ErrInvalidDenominations, values[i])
		}
		units[i] = q.Int64()
	}
	return units, decimal.NewFromBigInt(g, exp), nil
}

// minimalCounts returns, for every x < bound, the fewest notes summing to x
// or -1 when x is not representable.
func minimalCounts(units []int64, bound int64) []int32 {
	best := make([]int32, bound)
	for x := int64(1); x < bound; x++ {
		best[x] = -1
		for _, u := range units {
			if u > x || best[x-u] < 0 {
				continue
			}
			if c := best[x-u] + 1; best[x] < 0 || c < best[x] {
				best[x] = c
			}
		}
	}
	return best
}

// greedyCount mirrors NoteCalculator.Calculate on the integer grid.
func greedyCount(units []int64, x int64) int32 {
	var n int64
	for _, u := range units {
		n += x / u
		x %= u
	}
	if x != 0 {
		return -1
	}
	return int32(n)
}
