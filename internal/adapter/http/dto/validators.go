package dto

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// maxAmountScale bounds the fractional digits accepted in an amount.
	maxAmountScale = 10
	// maxAmountDigits bounds the total significant digits accepted in an amount.
	maxAmountDigits = 40
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators installs the decimal type func and the amount rule on v.
func RegisterValidators(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.NullDecimal{}, decimal.Decimal{})
	_ = v.RegisterValidation("amount", validateAmount)
}

// outOfPrecision stands in for amounts that fail AmountWithinPrecision so
// they are never expanded into a digit string.
const outOfPrecision = "out-of-precision"

// decimalValue exposes decimals to the validator as their string form so
// omitempty and string rules work on them. A null decimal validates as absent.
func decimalValue(field reflect.Value) any {
	switch d := field.Interface().(type) {
	case decimal.NullDecimal:
		if !d.Valid {
			return ""
		}
		return boundedString(d.Decimal)
	case decimal.Decimal:
		return boundedString(d)
	}
	return nil
}

func boundedString(d decimal.Decimal) string {
	if !AmountWithinPrecision(d) {
		return outOfPrecision
	}
	return d.String()
}

// validateAmount checks that an amount has bounded precision. Sign and
// representability are decided by the note calculator.
func validateAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	if raw == outOfPrecision {
		return false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return AmountWithinPrecision(d)
}

// AmountWithinPrecision reports whether d has at most 10 fractional digits
// and 40 digits in total. Only the coefficient and exponent are inspected,
// so an amount like 1e1000000 is rejected without being expanded.
func AmountWithinPrecision(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if -exp > maxAmountScale {
		return false
	}
	digits := int64(d.NumDigits())
	if exp > 0 {
		digits += exp
	}
	return digits <= maxAmountDigits
}

// SanitizeStruct trims whitespace and drops control characters from every
// exported string field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
