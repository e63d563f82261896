package output

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders GitHub-flavoured markdown tables
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder
	in, out := report.Inputs, report.Outputs

	sb.WriteString(fmt.Sprintf("# %s\n\n", report.Title))
	sb.WriteString(fmt.Sprintf("Tax year **%d**, filing status **%s**.\n\n", out.TaxYear, out.FilingStatus.Label()))

	sb.WriteString("## Inputs\n\n")
	sb.WriteString("| Input | Value |\n|---|---:|\n")
	sb.WriteString(fmt.Sprintf("| Income | %s |\n", FormatCurrency(in.Income)))
	sb.WriteString(fmt.Sprintf("| Strike price | %s |\n", FormatCurrency(in.StrikePrice)))
	sb.WriteString(fmt.Sprintf("| Fair market value | %s |\n", FormatCurrency(in.FairMarketValue)))
	sb.WriteString(fmt.Sprintf("| ISOs exercised | %s |\n\n", FormatShares(in.IsoCount)))

	sb.WriteString("## Results\n\n")
	sb.WriteString("| Measure | Amount |\n|---|---:|\n")
	for _, row := range [][2]string{
		{"Bargain element", FormatCurrency(out.BargainElement)},
		{"AMT income", FormatCurrency(out.AMTI)},
		{"AMT exemption", FormatCurrency(out.AmtExemption)},
		{"AMT base", FormatCurrency(out.AmtBase)},
		{"AMT", FormatCurrency(out.Amt)},
		{"Taxable income", FormatCurrency(out.TaxableIncome)},
		{"Ordinary tax", FormatCurrency(out.OrdinaryTax)},
		{"Marginal rate", FormatPercentage(out.MarginalRate)},
		{"**Payable tax**", "**" + FormatCurrency(out.PayableTax) + "**"},
	} {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", row[0], row[1]))
	}
	sb.WriteString("\n")

	if out.MaxIsos != nil {
		sb.WriteString(fmt.Sprintf("AMT exceeds ordinary tax by %s. Exercising about **%s** ISOs keeps AMT level with ordinary tax (%s).\n\n",
			FormatCurrency(out.Amt.Sub(out.OrdinaryTax)), FormatWholeShares(out.MaxIsos.Isos), solutionNote(out.MaxIsos)))
	} else {
		sb.WriteString("AMT does not exceed ordinary tax at this exercise size.\n\n")
	}

	if report.Sweep != nil {
		sb.WriteString("## ISO sweep\n\n")
		sb.WriteString("| ISOs | AMT | Ordinary tax | AMT applies |\n|---:|---:|---:|:---:|\n")
		for _, p := range report.Sweep.Points {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				FormatShares(p.IsoCount), FormatCurrency(p.Amt), FormatCurrency(p.OrdinaryTax), yesNo(p.AmtApplies)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("_Report %s_\n", report.ID))
	return []byte(sb.String()), nil
}
