// Package core holds the domain entities and value types of the finance core.
//
// This file contains the monetary amount type. Amounts are decimals rounded
// to two places in domain code; the storage layer keeps REAL columns for
// schema compatibility, so every value read from the database passes through
// MoneyFromFloat and is re-rounded before any comparison or sum.
package core

import (
	"github.com/shopspring/decimal"
)

// Money is a fixed-precision monetary amount (two decimal places).
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// MoneyFromFloat converts a stored REAL value to Money, rounding half-up
// on the third decimal place.
func MoneyFromFloat(f float64) Money {
	return Money{d: decimal.NewFromFloat(f).Round(2)}
}

// MoneyFromCents builds a Money from an integer number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

// ParseMoney parses a decimal string such as "12.34". The value is rounded
// to two places. Returns ErrInvalidAmount for unparseable input.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{d: d.Round(2)}, nil
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

// Cmp returns -1, 0 or 1 comparing m to o.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }
func (m Money) IsPositive() bool         { return m.d.IsPositive() }
func (m Money) IsNegative() bool         { return m.d.IsNegative() }
func (m Money) IsZero() bool             { return m.d.IsZero() }

// Float64 returns the amount for storage in a REAL column.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.d.Mul(decimal.New(100, 0)).IntPart()
}

// String formats the amount with exactly two decimal places, e.g. "1200.00".
func (m Money) String() string {
	return m.d.StringFixed(2)
}
