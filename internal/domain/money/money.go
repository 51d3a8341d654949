package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountOverflow = errors.New("amount overflows")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// Money is an amount in minor units (cents) of the canonical booking currency.
type Money struct {
	minor int64
}

func New(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{minor: minor}, nil
}

func Zero() Money {
	return Money{}
}

// Parse accepts a plain decimal with at most two fractional digits, e.g. "120" or "120.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return Money{}, ErrInvalidAmount
	}
	if rest, negative := strings.CutPrefix(whole, "-"); negative && rest != "" && isDigits(rest) && isDigits(frac) {
		return Money{}, ErrNegativeAmount
	}
	if whole == "" || !isDigits(whole) || !isDigits(frac) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Money{}, ErrAmountOverflow
	}
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if units > (math.MaxInt64-cents)/100 {
		return Money{}, ErrAmountOverflow
	}
	return Money{minor: units*100 + cents}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) Add(other Money) (Money, error) {
	if m.minor > math.MaxInt64-other.minor {
		return Money{}, ErrAmountOverflow
	}
	return Money{minor: m.minor + other.minor}, nil
}

func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.minor > math.MaxInt64/n {
		return Money{}, ErrAmountOverflow
	}
	return Money{minor: m.minor * n}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/100, m.minor%100)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
