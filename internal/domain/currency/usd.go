// Package currency renders money amounts for statements.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abdidvp/theater/internal/domain"
)

// CentsPerDollar is the number of minor units in one US dollar.
const CentsPerDollar = 100

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders cents as US currency, e.g. 123000 -> "$1,230.00".
// Negative amounts carry the sign before the symbol: "-$5.00".
func FormatUSD(amount domain.Cents) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	dollars := decimal.NewFromInt(int64(amount)).Div(decimal.NewFromInt(CentsPerDollar))
	return sign + "$" + group(dollars)
}

// group renders a non-negative dollar value with en-US thousands separators
// and exactly two decimal places.
func group(dollars decimal.Decimal) string {
	fixed := dollars.StringFixed(2)
	return printer.Sprintf("%d", dollars.IntPart()) + fixed[strings.IndexByte(fixed, '.'):]
}
