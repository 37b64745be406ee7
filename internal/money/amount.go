package money

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid monetary amount")
	ErrAmountPrecision = errors.New("amount has more than two fractional digits")
	ErrUnsupportedScan = errors.New("unsupported database value for amount")
)

// Amount is an exact monetary value held as an integer count of minor
// units (centavos). It is never represented as a binary float: arithmetic
// and comparisons operate on the integer value, and database round-trips
// go through decimal strings.
type Amount int64

// FromCents builds an Amount from a minor-unit integer.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// FromDecimal converts an exact decimal value into an Amount. Values with
// more than two fractional digits are not representable and are rejected.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, ErrAmountPrecision
	}
	return Amount(shifted.IntPart()), nil
}

// Cents returns the minor-unit integer value.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Decimal returns the amount as an exact decimal with two fractional digits.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Sub returns a − b. The result may be negative; callers that need to
// forbid overdrafts must check for themselves.
func (a Amount) Sub(b Amount) Amount {
	return a - b
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// String returns the plain decimal form with two fractional digits,
// e.g. "1234.56". For the localized display form use Format.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with two fractional
// digits, which is the form the backend stores.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	parsed, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer so gorm can persist amounts into
// decimal columns without ever passing through a float.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal().StringFixed(2), nil
}

// Scan implements sql.Scanner for the column types the supported drivers
// hand back for decimal(15,2) columns.
func (a *Amount) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*a = 0
		return nil
	case int64:
		*a = Amount(v * 100)
		return nil
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	case float64:
		// sqlite hands decimal columns back as float64; round to two
		// places before converting so the test driver stays usable
		parsed, err := FromDecimal(decimal.NewFromFloat(v).Round(2))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScan, value)
	}
}

func (a *Amount) scanString(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	parsed, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
