// Package money implements the monetary value type used by the backend.
//
// All amounts carry exactly two decimal places. External input is
// quantized with round-half-up on the way in, so arithmetic between two
// Amount values never grows the scale.
package money

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a monetary input cannot be parsed.
var ErrInvalidAmount = errors.New("the amount is not a valid decimal number")

// Amount is a monetary amount with a fixed scale of two decimal places.
type Amount struct {
	value decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// New returns the Amount for a decimal, quantized to two places.
// decimal.Round rounds half away from zero, which is the
// round-half-up behavior the ledger requires.
func New(d decimal.Decimal) Amount {
	return Amount{value: d.Round(2)}
}

// Parse parses a decimal string into an Amount.
func Parse(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Zero, ErrInvalidAmount
	}

	return New(d), nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns the sum of both amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Sub returns the difference of both amounts.
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value)}
}

// MulPeriods returns the amount multiplied by an integer period count.
func (a Amount) MulPeriods(periods int) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(int64(periods)))}
}

// IsPositive reports whether the amount is larger than zero.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// IsNegative reports whether the amount is smaller than zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// Equal reports whether both amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// String renders the amount with exactly two decimal places.
func (a Amount) String() string {
	return a.value.StringFixed(2)
}

// Display renders the amount for end users, with a currency prefix.
func (a Amount) Display() string {
	return "$" + a.String()
}

// MarshalJSON implements the json.Marshaler interface.
// Amounts are rendered as JSON strings to avoid clients reading
// them into binary floats.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both JSON strings and JSON numbers are accepted, the value is
// quantized to two decimal places.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*a = Zero
		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// Scan reads the value from the database.
func (a *Amount) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}

	*a = New(d)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (a Amount) Value() (driver.Value, error) {
	return a.value.Value()
}

// GormDataType defines the data type used by gorm for the type.
func (Amount) GormDataType() string {
	return "DECIMAL(12,2)"
}
