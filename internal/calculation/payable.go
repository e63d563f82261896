package calculation

import "github.com/shopspring/decimal"

// PayableTax is the greater of AMT and ordinary tax
func PayableTax(amt, ordinaryTax decimal.Decimal) decimal.Decimal {
	return decimal.Max(amt, ordinaryTax)
}
