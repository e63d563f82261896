package calculation

import "github.com/shopspring/decimal"

// BargainElement returns the AMT preference created by exercising isoCount
// options: (fmv - strike) * isoCount. The result is not clamped, so an
// underwater grant yields a negative spread.
func BargainElement(fmv, strike, isoCount decimal.Decimal) decimal.Decimal {
	return fmv.Sub(strike).Mul(isoCount)
}
