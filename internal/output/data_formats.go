package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the report as indented JSON
var JSONFormatter = FormatterFunc{
	ID: "json",
	F: func(report *Report) ([]byte, error) {
		return json.MarshalIndent(report, "", "  ")
	},
}

// YAMLFormatter renders the report as YAML
var YAMLFormatter = FormatterFunc{
	ID: "yaml",
	F: func(report *Report) ([]byte, error) {
		return yaml.Marshal(report)
	},
}

// CSVFormatter writes one metric per row, followed by sweep rows when present
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	out := report.Outputs

	rows := [][]string{
		{"Metric", "Value"},
		{"TaxYear", strconv.Itoa(out.TaxYear)},
		{"FilingStatus", string(out.FilingStatus)},
		{"Income", report.Inputs.Income.StringFixed(2)},
		{"StrikePrice", report.Inputs.StrikePrice.StringFixed(2)},
		{"FairMarketValue", report.Inputs.FairMarketValue.StringFixed(2)},
		{"IsoCount", report.Inputs.IsoCount.String()},
		{"BargainElement", out.BargainElement.StringFixed(2)},
		{"AMTI", out.AMTI.StringFixed(2)},
		{"AmtExemption", out.AmtExemption.StringFixed(2)},
		{"AmtBase", out.AmtBase.StringFixed(2)},
		{"Amt", out.Amt.StringFixed(2)},
		{"TaxableIncome", out.TaxableIncome.StringFixed(2)},
		{"OrdinaryTax", out.OrdinaryTax.StringFixed(2)},
		{"MarginalRate", out.MarginalRate.StringFixed(2)},
		{"PayableTax", out.PayableTax.StringFixed(2)},
	}
	if out.MaxIsos != nil {
		rows = append(rows, []string{"MaxIsos", out.MaxIsos.Isos.StringFixed(4)})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	if report.Sweep != nil {
		if err := w.Write([]string{}); err != nil {
			return nil, err
		}
		if err := w.Write([]string{"IsoCount", "Amt", "OrdinaryTax", "PayableTax", "AmtApplies"}); err != nil {
			return nil, err
		}
		for _, p := range report.Sweep.Points {
			row := []string{p.IsoCount.StringFixed(2), p.Amt.StringFixed(2), p.OrdinaryTax.StringFixed(2), p.PayableTax.StringFixed(2), yesNo(p.AmtApplies)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
