package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats an amount as US dollars with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", rounded.Neg().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatShares formats a share count with two decimals and separators
func FormatShares(count decimal.Decimal) string {
	return printer.Sprintf("%.2f", count.Round(2).InexactFloat64())
}

// FormatWholeShares rounds a share count down to whole shares
func FormatWholeShares(count decimal.Decimal) string {
	return printer.Sprintf("%d", count.Floor().IntPart())
}

// FormatPercentage formats percentage points ("24" -> "24.00%")
func FormatPercentage(points decimal.Decimal) string {
	return points.StringFixed(2) + "%"
}
