package taxtables

import (
	"fmt"

	"github.com/rgehrsitz/isoamt/internal/domain"
)

// TableError describes a tax table that violates a ladder or constant invariant
type TableError struct {
	Year    int
	Status  domain.FilingStatus
	Message string
	Cause   error
}

func (e *TableError) Error() string {
	prefix := fmt.Sprintf("tax year %d", e.Year)
	if e.Status != "" {
		prefix = fmt.Sprintf("%s (%s)", prefix, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}
