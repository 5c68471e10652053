// Package numparse converts user-entered text into numbers the way the
// estimator forms expect.
package numparse

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned when the text holds no number at all.
var ErrEmpty = errors.New("empty value")

// Amount parses a monetary amount. Surrounding whitespace and grouping
// commas are ignored; NaN and infinities are rejected.
func Amount(text string) (decimal.Decimal, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if trimmed == "" {
		return decimal.Zero, ErrEmpty
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return decimal.Zero, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, strconv.ErrSyntax
	}

	return decimal.NewFromString(trimmed)
}

// Months parses a whole month count. Fractional input is truncated toward
// zero. Anything unparsable, or outside the int32 range, yields 0.
func Months(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	var f float64
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		f = float64(n)
	} else {
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		f = math.Trunc(parsed)
	}

	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}
