// Package core holds the domain records of the finance dashboard and the
// money and date primitives they share.
//
// Amounts are stored as integer cents so that aggregation never accumulates
// floating-point drift; conversion to a displayable decimal happens only at
// the presentation boundary.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in whole cents.
type Money struct {
	Cents int64 `json:"cents"`
}

var ErrInvalidAmount = errors.New("invalid amount")

var centsPerUnit = decimal.NewFromInt(100)

// maximum cents value ParseAmount accepts, to keep totals far from overflow
var maxParseCents = decimal.NewFromInt(1_000_000_000_000)

// ParseAmount converts a decimal string such as "12.34" to Money with
// half-up rounding on the third decimal place. Comma decimal separators
// are accepted. Negative, zero, empty and non-numeric inputs are rejected;
// a parse failure is always a returned error, never a panic.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Mul(centsPerUnit).Round(0)
	if cents.GreaterThan(maxParseCents) {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// ParseSignedAmount is ParseAmount without the positivity requirement.
// Used for savings adjustments, where withdrawals are negative deltas.
func ParseSignedAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents := d.Mul(centsPerUnit).Round(0)
	if cents.Abs().GreaterThan(maxParseCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Decimal returns the amount in currency units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.Cents).Div(centsPerUnit)
}

// Dollars returns the amount as a float64 for display purposes only.
func (m Money) Dollars() float64 {
	return float64(m.Cents) / 100.0
}

// FormatUSD renders the amount with two decimals and a comma thousands
// separator, e.g. "$2,800.00" or "-$15.99".
func FormatUSD(m Money) string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	units := cents / 100
	rem := cents % 100
	s := groupThousands(units)
	out := fmt.Sprintf("$%s.%02d", s, rem)
	if neg {
		return "-" + out
	}
	return out
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
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
