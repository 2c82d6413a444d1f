package planner

import (
	"fmt"
	"time"
)

// ValidationError reports user input that is insufficient to generate a
// plan. Field names the offending request field so the caller can attach
// the message to the right form control.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidDateRangeError reports an exam or end date that precedes the
// plan's start date.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s",
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}
