package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// CurrencySymbol prefixes every localized display string.
	CurrencySymbol = "R$"

	// DefaultMaxDigits bounds the minor-unit digit count accepted from
	// keystroke input so the field cannot grow past decimal(15,2).
	DefaultMaxDigits = 10
)

// NormalizeKeystroke turns the live text of a currency input field into
// the canonical localized display string. The raw value is reduced to its
// digits (everything the user typed on top of the previous formatting is
// stripped), truncated to maxDigits keeping the earliest-typed digits,
// interpreted as minor units, and re-rendered with grouping and exactly
// two fractional digits.
//
// An empty or digit-free input clears the field: the empty string comes
// back unchanged rather than as a formatted zero, so a cleared field does
// not retain stale formatting.
func NormalizeKeystroke(raw string, maxDigits int) string {
	if maxDigits <= 0 {
		maxDigits = DefaultMaxDigits
	}

	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}

	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		// digits is all ASCII digits at this point; parse cannot fail
		return ""
	}

	amount, err := FromDecimal(d.Shift(-2))
	if err != nil {
		return ""
	}
	return Format(amount)
}

// ParseDisplay converts a localized display string back into an exact
// Amount. The currency symbol, whitespace and thousands separators are
// removed and the decimal comma is mapped to a radix point before
// parsing. A residual string that is not numeric fails with
// ErrInvalidAmount.
func ParseDisplay(display string) (Amount, error) {
	cleaned := strings.NewReplacer(
		CurrencySymbol, "",
		" ", "",
		" ", "",
		".", "",
	).Replace(display)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}

	return FromDecimal(d.Round(2))
}

// IsPositive reports whether display parses to an amount strictly greater
// than zero. Zero and negative values are never valid transfer amounts.
func IsPositive(display string) bool {
	amount, err := ParseDisplay(display)
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

// Format renders an Amount in the canonical localized form, e.g.
// "R$ 1.234,56". Zero formats as "R$ 0,00" rather than an empty string;
// clearing is a property of keystroke normalization only.
func Format(a Amount) string {
	return CurrencySymbol + " " + FormatNumber(a)
}

// FormatNumber renders an Amount with grouping and two fractional digits
// but without the currency symbol, e.g. "1.234,56".
func FormatNumber(a Amount) string {
	cents := a.Cents()
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	return fmt.Sprintf("%s%s,%02d", sign, groupThousands(whole), frac)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
