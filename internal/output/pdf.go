package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin       = 20.0
	pdfContentWidth = 215.9 - 2*pdfMargin // letter width in mm
)

// PDFFormatter renders a one-page PDF summary
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(report.Title, true)
	pdf.AddPage()

	in, out := report.Inputs, report.Outputs

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, report.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf("Tax year %d - %s", out.TaxYear, out.FilingStatus.Label()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string, rows [][2]string) {
		pdf.SetFillColor(245, 247, 250)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(pdfContentWidth, 8, title, "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(50, 50, 50)
		for _, row := range rows {
			pdf.CellFormat(pdfContentWidth*0.6, 7, row[0], "LB", 0, "L", false, 0, "")
			pdf.CellFormat(pdfContentWidth*0.4, 7, row[1], "RB", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	section("Inputs", [][2]string{
		{"Income", FormatCurrency(in.Income)},
		{"Strike price", FormatCurrency(in.StrikePrice)},
		{"Fair market value", FormatCurrency(in.FairMarketValue)},
		{"ISOs exercised", FormatShares(in.IsoCount)},
	})

	section("Alternative minimum tax", [][2]string{
		{"Bargain element", FormatCurrency(out.BargainElement)},
		{"AMT income", FormatCurrency(out.AMTI)},
		{"AMT exemption", FormatCurrency(out.AmtExemption)},
		{"AMT base", FormatCurrency(out.AmtBase)},
		{"AMT", FormatCurrency(out.Amt)},
	})

	result := [][2]string{
		{"Taxable income", FormatCurrency(out.TaxableIncome)},
		{"Ordinary tax", FormatCurrency(out.OrdinaryTax)},
		{"Marginal rate", FormatPercentage(out.MarginalRate)},
		{"Payable tax", FormatCurrency(out.PayableTax)},
	}
	if out.MaxIsos != nil {
		result = append(result, [2]string{"Max ISOs before AMT", FormatShares(out.MaxIsos.Isos)})
	}
	section("Result", result)

	if report.Sweep != nil {
		rows := make([][2]string, 0, len(report.Sweep.Points))
		for _, pt := range report.Sweep.Points {
			rows = append(rows, [2]string{
				FormatShares(pt.IsoCount) + " ISOs",
				fmt.Sprintf("AMT %s / ordinary %s", FormatCurrency(pt.Amt), FormatCurrency(pt.OrdinaryTax)),
			})
		}
		section("ISO sweep", rows)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Report %s, generated %s", report.ID, report.Generated.Format("2 January 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
