package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// AmountFormatter renders a monetary amount for user-facing messages.
type AmountFormatter func(amount decimal.Decimal) string

// PlainAmount formats an amount with its natural decimal representation.
func PlainAmount(amount decimal.Decimal) string {
	return amount.String()
}

// Currency describes the single currency the ATM dispenses.
type Currency struct {
	Unit   currency.Unit
	Symbol string
	Name   string
	scale  int32
}

// NewCurrency validates an ISO 4217 code and derives the display scale
// from the CLDR rounding data ("ZAR" -> 2 decimals, "JPY" -> 0).
func NewCurrency(code, symbol, name string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("parsing currency code %q: %w", code, err)
	}
	if symbol == "" {
		symbol = unit.String() + " "
	}
	scale, _ := currency.Standard.Rounding(unit)
	return Currency{
		Unit:   unit,
		Symbol: symbol,
		Name:   name,
		scale:  int32(scale),
	}, nil
}

// Code returns the ISO 4217 code.
func (c Currency) Code() string {
	return c.Unit.String()
}

// Format renders the amount as symbol + fixed decimals, e.g. "R125.00" or "-R130.00".
func (c Currency) Format(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + c.Symbol + amount.Neg().StringFixed(c.scale)
	}
	return c.Symbol + amount.StringFixed(c.scale)
}
