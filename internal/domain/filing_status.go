package domain

import (
	"fmt"
	"strings"
)

// FilingStatus selects which row of a tax year's constants applies
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
	MarriedFilingSeparately FilingStatus = "married_filing_separately"
)

// FilingStatuses lists every supported filing status in display order
var FilingStatuses = []FilingStatus{Single, MarriedFilingJointly, MarriedFilingSeparately}

// ParseFilingStatus accepts canonical names and the short forms s, mfj and mfs.
// Empty input resolves to Single.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "s", "single":
		return Single, nil
	case "mfj", "joint", "married_filing_jointly", "married-filing-jointly":
		return MarriedFilingJointly, nil
	case "mfs", "separate", "married_filing_separately", "married-filing-separately":
		return MarriedFilingSeparately, nil
	default:
		return "", fmt.Errorf("unknown filing status %q (expected single, mfj or mfs)", s)
	}
}

// OrDefault returns Single for the zero value
func (fs FilingStatus) OrDefault() FilingStatus {
	if fs == "" {
		return Single
	}
	return fs
}

// Label returns a human readable name
func (fs FilingStatus) Label() string {
	switch fs.OrDefault() {
	case Single:
		return "Single"
	case MarriedFilingJointly:
		return "Married Filing Jointly"
	case MarriedFilingSeparately:
		return "Married Filing Separately"
	default:
		return string(fs)
	}
}

// Short returns the abbreviated form used in tables and tabs
func (fs FilingStatus) Short() string {
	switch fs.OrDefault() {
	case MarriedFilingJointly:
		return "MFJ"
	case MarriedFilingSeparately:
		return "MFS"
	default:
		return "Single"
	}
}

// Next cycles through FilingStatuses
func (fs FilingStatus) Next() FilingStatus {
	for i, s := range FilingStatuses {
		if s == fs.OrDefault() {
			return FilingStatuses[(i+1)%len(FilingStatuses)]
		}
	}
	return Single
}

// Prev cycles backwards through FilingStatuses
func (fs FilingStatus) Prev() FilingStatus {
	for i, s := range FilingStatuses {
		if s == fs.OrDefault() {
			return FilingStatuses[(i+len(FilingStatuses)-1)%len(FilingStatuses)]
		}
	}
	return Single
}
