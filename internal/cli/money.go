package cli

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount as a grouped whole number followed by the
// currency suffix, e.g. "12,500 $". Amounts are rounded half away from zero.
func FormatMoney(amount float64, currency string) string {
	whole := decimal.NewFromFloat(amount).Round(0).IntPart()
	if currency == "" {
		return moneyPrinter.Sprintf("%d", whole)
	}
	return moneyPrinter.Sprintf("%d %s", whole, currency)
}
