package compare

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Filing Status",
		"Type",
		"AMT",
		"Ordinary Tax",
		"Payable Tax",
		"AMT Applies",
		"Max ISOs",
		"Payable Diff from Base",
		"Payable % Change",
		"AMT Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		string(result.FilingStatus),
		kind,
		result.Amt.StringFixed(2),
		result.OrdinaryTax.StringFixed(2),
		result.PayableTax.StringFixed(2),
		strconv.FormatBool(result.AmtApplies),
		result.MaxIsos.StringFixed(2),
		result.PayableDiffFromBase.StringFixed(2),
		result.PayablePctFromBase.StringFixed(2),
		result.AmtDiffFromBase.StringFixed(2),
	}
}

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Indent string // empty for compact output
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(compSet, "", jf.Indent)
	if jf.Indent == "" {
		data, err = json.Marshal(compSet)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
