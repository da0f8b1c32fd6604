package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a non-negative amount in minor currency units (cents).
// Compensation figures are parsed from decimal strings and kept as int64
// to avoid float drift when summing.
type Money int64

// ParseMoney parses a decimal string like "123", "123.4" or "123.45" into
// Money. At most two fractional digits are accepted. Negative amounts are
// rejected with ErrValidation.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", ErrValidation)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: amount has more than two decimal places", ErrValidation)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}

	// ParseInt would accept a sign inside the fraction, so require digits.
	cents := int64(0)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
		}
		cents = cents*10 + int64(c-'0')
	}
	if len(frac) == 1 {
		cents *= 10
	}

	const maxUnits = (1<<63 - 1) / 100
	if units > maxUnits {
		return 0, fmt.Errorf("%w: amount too large", ErrValidation)
	}

	return Money(units*100 + cents), nil
}

// String formats the amount as a plain decimal, e.g. "123.45".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Cents returns the raw minor-unit value.
func (m Money) Cents() int64 { return int64(m) }
