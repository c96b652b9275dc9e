package dto

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal that marshals as a bare JSON number.
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// Amounts converts decimals for a response body. The result is never nil.
func Amounts(values []decimal.Decimal) []Amount {
	out := make([]Amount, len(values))
	for i, v := range values {
		out[i] = Amount(v)
	}
	return out
}

// WithdrawalRequest is the request body for a withdrawal.
// amount accepts a JSON number, a numeric string, or null; absent means zero.
type WithdrawalRequest struct {
	Amount decimal.NullDecimal `json:"amount" binding:"omitempty,amount"`
}

// WithdrawalResponse is the response body for a successful withdrawal.
type WithdrawalResponse struct {
	Notes       []Amount `json:"notes"`
	TotalAmount Amount   `json:"totalAmount"`
	NoteCount   int64    `json:"noteCount"`
}

// DenominationsResponse describes what the ATM can dispense.
type DenominationsResponse struct {
	Currency      string   `json:"currency"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Denominations []Amount `json:"denominations"`
	MaxAmount     *Amount  `json:"maxAmount,omitempty"`
}

// ServiceStatusResponse is the fixed liveness body.
type ServiceStatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadinessResponse reports the state of each configured dependency.
type ReadinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus is the outcome of one dependency ping.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// WithdrawalForm is the urlencoded body posted by the HTML form.
type WithdrawalForm struct {
	Amount string `form:"amount" binding:"max=64"`
}
