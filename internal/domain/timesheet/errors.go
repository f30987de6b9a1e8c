package timesheet

import (
	"errors"
	"fmt"
)

var (
	ErrFortnightLength = errors.New("a fortnight requires exactly 14 days")
	ErrStartDate       = errors.New("start date is required")
)

// ValidationError reports a structurally invalid input, naming the day and
// field at fault. Day is the 1-based position within the fortnight; 0 means
// the problem is not tied to a particular day.
type ValidationError struct {
	Day    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Day > 0 {
		return fmt.Sprintf("day %d: field %q: %s", e.Day, e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
