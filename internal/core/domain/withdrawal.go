package domain

import "github.com/shopspring/decimal"

// NoteBundle is a run of identical notes inside a withdrawal.
type NoteBundle struct {
	Denomination decimal.Decimal
	Count        int64
}

// Total is the value of the run.
func (b NoteBundle) Total() decimal.Decimal {
	return b.Denomination.Mul(decimal.NewFromInt(b.Count))
}

// WithdrawalResult is the ordered sequence of notes to dispense. The
// sequence is stored run-length encoded; total and count are always
// derived from it.
type WithdrawalResult struct {
	bundles []NoteBundle
}

// NewWithdrawalResult builds a result from an explicit dispense sequence.
func NewWithdrawalResult(notes ...decimal.Decimal) *WithdrawalResult {
	r := &WithdrawalResult{}
	for _, n := range notes {
		last := len(r.bundles) - 1
		if last >= 0 && r.bundles[last].Denomination.Equal(n) {
			r.bundles[last].Count++
			continue
		}
		r.bundles = append(r.bundles, NoteBundle{Denomination: n, Count: 1})
	}
	return r
}

// NewWithdrawalResultFromBundles builds a result from runs of notes.
// Empty runs are dropped.
func NewWithdrawalResultFromBundles(bundles []NoteBundle) *WithdrawalResult {
	r := &WithdrawalResult{bundles: make([]NoteBundle, 0, len(bundles))}
	for _, b := range bundles {
		if b.Count > 0 {
			r.bundles = append(r.bundles, b)
		}
	}
	return r
}

// Notes expands the dispense sequence. Callers dispensing very large
// amounts should prefer Breakdown.
func (r *WithdrawalResult) Notes() []decimal.Decimal {
	notes := make([]decimal.Decimal, 0, r.NoteCount())
	for _, b := range r.bundles {
		for i := int64(0); i < b.Count; i++ {
			notes = append(notes, b.Denomination)
		}
	}
	return notes
}

// Breakdown returns a copy of the note runs in dispense order.
func (r *WithdrawalResult) Breakdown() []NoteBundle {
	out := make([]NoteBundle, len(r.bundles))
	copy(out, r.bundles)
	return out
}

// TotalAmount is the sum of all notes.
func (r *WithdrawalResult) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.bundles {
		total = total.Add(b.Total())
	}
	return total
}

// NoteCount is the number of notes.
func (r *WithdrawalResult) NoteCount() int64 {
	var n int64
	for _, b := range r.bundles {
		n += b.Count
	}
	return n
}

// IsEmpty reports whether nothing is dispensed.
func (r *WithdrawalResult) IsEmpty() bool {
	return len(r.bundles) == 0
}
