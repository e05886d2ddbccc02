// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places of the currency minor unit (cents).
const minorUnitExponent = 2

// Money is an amount expressed in integer minor currency units (e.g., cents).
// Totals are accumulated in Money and only converted to a decimal for display.
type Money int64

// MaxMoney and MinMoney bound every representable amount.
const (
	MaxMoney Money = math.MaxInt64
	MinMoney Money = math.MinInt64
)

// ErrMoneyOutOfRange is returned for amounts that do not fit in minor units.
var ErrMoneyOutOfRange = errors.New("money amount out of range")

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// MoneyFromDecimal converts a decimal amount to minor units, rounding half away from zero.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	minor := d.Shift(minorUnitExponent).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return 0, errors.Wrapf(ErrMoneyOutOfRange, "amount %s", d.String())
	}

	return Money(minor.IntPart()), nil
}

// ParseMoney parses a decimal string such as "3.50" into minor units.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "parse money %q", s)
	}

	return MoneyFromDecimal(d)
}

// Mul returns the amount multiplied by an integer quantity, clamped to
// [MinMoney, MaxMoney].
func (m Money) Mul(quantity int) Money {
	if m == 0 || quantity == 0 {
		return 0
	}

	q := Money(quantity)
	product := m * q
	if product/q == m && !(m == -1 && q == MinMoney) && !(q == -1 && m == MinMoney) {
		return product
	}
	if (m > 0) == (q > 0) {
		return MaxMoney
	}

	return MinMoney
}

// Add returns m + other, clamped to [MinMoney, MaxMoney].
func (m Money) Add(other Money) Money {
	sum := m + other
	switch {
	case other > 0 && sum < m:
		return MaxMoney
	case other < 0 && sum > m:
		return MinMoney
	default:
		return sum
	}
}

// Decimal returns the amount as a decimal in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -minorUnitExponent)
}

// String returns the display form with exactly two decimals, e.g. "16.99".
func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnitExponent)
}

// MarshalJSON encodes the amount as a decimal string to keep it exact on the wire.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted decimals ("3.50") and bare JSON numbers (3.5).
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "decode money")
	}
	amount, err := MoneyFromDecimal(d)
	if err != nil {
		return errors.Wrap(err, "decode money")
	}
	*m = amount

	return nil
}
