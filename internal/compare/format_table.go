package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/isoamt/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing filing statuses
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("FILING STATUS COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Tax Year: %d\n", compSet.TaxYear))
	sb.WriteString(fmt.Sprintf("Base: %s\n", compSet.BaseStatus.Label()))
	sb.WriteString(fmt.Sprintf("Income %s, %s ISOs at %s (FMV %s)\n",
		output.FormatCurrency(compSet.Inputs.Income),
		output.FormatShares(compSet.Inputs.IsoCount),
		output.FormatCurrency(compSet.Inputs.StrikePrice),
		output.FormatCurrency(compSet.Inputs.FairMarketValue)))
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Filing Status",
		numWidth, "AMT",
		numWidth, "Ordinary",
		numWidth, "Payable",
		numWidth, "Max ISOs"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Name()))
			sb.WriteString(fmt.Sprintf("  Payable Tax:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.PayableDiffFromBase),
				tf.formatDecimal(alt.PayableDiffFromBase),
				alt.PayablePctFromBase.StringFixed(1)))
			if !alt.AmtDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  AMT:          %s$%s\n",
					tf.deltaSymbol(alt.AmtDiffFromBase),
					tf.formatDecimal(alt.AmtDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name()
	if isBase {
		name += " (base)"
	}

	maxIsos := "-"
	if result.AmtApplies {
		maxIsos = output.FormatWholeShares(result.MaxIsos)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.Amt),
		numWidth, "$"+tf.formatDecimal(result.OrdinaryTax),
		numWidth, "$"+tf.formatDecimal(result.PayableTax),
		numWidth, maxIsos)
}

// formatDecimal formats an amount in whole dollars, thousands (K) or millions (M)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	d = d.Abs()
	if d.GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign to print in front of an absolute delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line summary of payable tax deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseStatus.Short()))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.PayableDiffFromBase.IsZero() {
			change = fmt.Sprintf("%s$%s", tf.deltaSymbol(alt.PayableDiffFromBase), tf.formatDecimal(alt.PayableDiffFromBase))
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.FilingStatus.Short(), change))
	}

	return sb.String()
}
