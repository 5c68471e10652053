// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	half     = decimal.NewFromFloat(0.5)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// RoundToUnit rounds a value to the nearest whole currency unit. Halves
// round toward positive infinity, so 2.5 becomes 3 and -2.5 becomes -2.
// ok is false when the rounded value does not fit in an int64.
func RoundToUnit(val decimal.Decimal) (rounded int64, ok bool) {
	r := val.Add(half).Floor()
	if !InRange(r, minInt64, maxInt64) {
		return 0, false
	}
	return r.IntPart(), true
}

// Cap returns val limited to ceiling.
func Cap(val, ceiling decimal.Decimal) decimal.Decimal {
	return decimal.Min(val, ceiling)
}

// MustDecimal parses a decimal literal and panics on error. Intended for
// package-level constants whose text is known to be valid.
func MustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// InRange reports whether lo <= val <= hi.
func InRange(val, lo, hi decimal.Decimal) bool {
	return val.GreaterThanOrEqual(lo) && val.LessThanOrEqual(hi)
}

