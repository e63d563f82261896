package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/isoamt/internal/domain"
)

// ConsoleFormatter renders a plain text report for terminals
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder
	in, out := report.Inputs, report.Outputs

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(strings.ToUpper(report.Title) + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Tax Year:            %d\n", out.TaxYear))
	sb.WriteString(fmt.Sprintf("Filing Status:       %s\n", out.FilingStatus.Label()))
	sb.WriteString("\n")

	sb.WriteString("INPUTS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeRow(&sb, "Income", FormatCurrency(in.Income))
	writeRow(&sb, "Strike Price", FormatCurrency(in.StrikePrice))
	writeRow(&sb, "Fair Market Value", FormatCurrency(in.FairMarketValue))
	writeRow(&sb, "ISOs Exercised", FormatShares(in.IsoCount))
	sb.WriteString("\n")

	sb.WriteString("ALTERNATIVE MINIMUM TAX\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeRow(&sb, "Bargain Element", FormatCurrency(out.BargainElement))
	writeRow(&sb, "AMT Income (AMTI)", FormatCurrency(out.AMTI))
	writeRow(&sb, "AMT Exemption", FormatCurrency(out.AmtExemption))
	writeRow(&sb, "AMT Base", FormatCurrency(out.AmtBase))
	writeRow(&sb, "AMT", FormatCurrency(out.Amt))
	sb.WriteString("\n")

	sb.WriteString("ORDINARY INCOME TAX\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeRow(&sb, "Taxable Income", FormatCurrency(out.TaxableIncome))
	writeRow(&sb, "Ordinary Tax", FormatCurrency(out.OrdinaryTax))
	writeRow(&sb, "Marginal Rate", FormatPercentage(out.MarginalRate))
	sb.WriteString("\n")

	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeRow(&sb, "Payable Tax", FormatCurrency(out.PayableTax))
	if out.AmtApplies() {
		writeRow(&sb, "AMT Over Ordinary", FormatCurrency(out.Amt.Sub(out.OrdinaryTax)))
	} else {
		sb.WriteString("AMT does not exceed ordinary tax at this exercise size.\n")
	}
	if out.MaxIsos != nil {
		writeRow(&sb, "Max ISOs Before AMT", FormatShares(out.MaxIsos.Isos))
		sb.WriteString(fmt.Sprintf("  (%s)\n", solutionNote(out.MaxIsos)))
	}

	if report.Sweep != nil {
		sb.WriteString("\n")
		sb.WriteString("ISO SWEEP\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("%14s %15s %15s %10s\n", "ISOs", "AMT", "Ordinary", "AMT?"))
		for _, p := range report.Sweep.Points {
			sb.WriteString(fmt.Sprintf("%14s %15s %15s %10s\n",
				FormatShares(p.IsoCount), FormatCurrency(p.Amt), FormatCurrency(p.OrdinaryTax), yesNo(p.AmtApplies)))
		}
	}

	return []byte(sb.String()), nil
}

func writeRow(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("%-21s%s\n", label+":", value))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func solutionNote(s *domain.Solution) string {
	if s.Converged {
		return fmt.Sprintf("converged in %d iterations, within %s of ordinary tax", s.Iterations, FormatCurrency(s.Discrepancy.Abs()))
	}
	return fmt.Sprintf("approximate: stopped after %d iterations, %s from ordinary tax", s.Iterations, FormatCurrency(s.Discrepancy.Abs()))
}
