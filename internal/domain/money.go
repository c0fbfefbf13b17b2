package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxDollars keeps dollars*100 plus any cents within int64.
const maxDollars = (math.MaxInt64 - 99) / 100

// Money is an amount in US cents. Display strings such as "$125,000" are
// only produced and consumed by ParseMoney and String.
type Money int64

// Dollars builds a Money value from a whole-dollar amount.
func Dollars(d int64) Money {
	return Money(d * 100)
}

// ParseMoney converts a display string like "$125,000", "85000" or
// "$1,234.56" into Money. Currency symbols, thousands separators and
// surrounding whitespace are ignored. At most two decimal places are accepted.
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = strings.TrimSpace(raw[1:])
	}
	clean := strings.NewReplacer("$", "", ",", "").Replace(raw)
	if clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	whole, frac, hasFrac := strings.Cut(clean, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars > maxDollars {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidMoney, s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	m := Money(dollars*100 + cents)
	if neg {
		m = -m
	}
	return m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String formats m as "$125,000", keeping cents only when they are non-zero.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	dollars, cents := v/100, v%100
	if cents == 0 {
		return fmt.Sprintf("%s$%s", sign, humanize.Comma(dollars))
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(dollars), cents)
}

// Thousands formats m the way summary cards show it: "$465k".
func (m Money) Thousands() string {
	return fmt.Sprintf("$%sk", humanize.Comma((int64(m)+50_000)/100_000))
}
