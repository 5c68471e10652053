// Package format renders whole-unit currency amounts for display.
package format

import (
	"strconv"
	"strings"

	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with a currency symbol and digit grouping.
type Formatter struct {
	Symbol   string
	Grouping string
}

// NewFormatter returns a Formatter, filling empty fields with the rupee
// symbol and Indian grouping.
func NewFormatter(symbol, grouping string) Formatter {
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	if grouping == "" {
		grouping = constants.GroupingIndian
	}
	return Formatter{Symbol: symbol, Grouping: grouping}
}

// Currency returns the amount with the symbol and separators (e.g. "-₹1,00,000").
func (f Formatter) Currency(amount int64) string {
	formatted := f.Numeric(abs(amount))
	if amount < 0 {
		return "-" + f.Symbol + formatted
	}
	return f.Symbol + formatted
}

// Numeric returns the amount with separators but no symbol.
func (f Formatter) Numeric(amount int64) string {
	if f.Grouping == constants.GroupingWestern {
		return Western(amount)
	}
	return Indian(amount)
}

// Rupees formats with the default symbol and Indian grouping.
func Rupees(amount int64) string {
	return NewFormatter("", "").Currency(amount)
}

// Western groups digits in threes (e.g. "1,234,567").
func Western(amount int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", amount)
}

// Indian groups the last three digits, then pairs (e.g. "12,34,567").
func Indian(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	digits := strconv.FormatInt(abs(amount), 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return sign + builder.String() + "," + tail
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
