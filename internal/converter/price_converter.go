package converter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatVND renders an amount the way the salon UI shows prices:
// dot-grouped thousands followed by the currency code, e.g. "150.000 VND".
// Fractions are rounded to whole dong.
func FormatVND(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().StringFixed(0)

	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" VND")
	return b.String()
}

func FormatPrice(price int64) string {
	return FormatVND(decimal.NewFromInt(price))
}
