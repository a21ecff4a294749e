// Package money provides a currency amount stored in integer minor units
// (cents). Amounts are encoded on the wire as plain decimal numbers
// ("149.99"), matching the dashboard's data contract, while all arithmetic
// happens on int64 cents so line-item totals never accumulate binary
// floating-point drift.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in hundredths of the currency unit.
type Cents int64

// Parse converts a decimal string such as "149.99" or "-3.5" into Cents.
// At most two fractional digits are accepted; anything finer has no
// representation in the currency's minor unit.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	// The sign was consumed above, so both parts must be bare digits;
	// ParseInt alone would let a stray sign inside the fraction through.
	if !digitsOnly(whole) || (frac != "" && !digitsOnly(frac)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	c := w*100 + f
	if neg {
		c = -c
	}
	return Cents(c), nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(n int64) Cents { return c * Cents(n) }

// String formats the amount as a decimal with exactly two fractional digits.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a bare decimal number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
