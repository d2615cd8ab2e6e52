package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidGroupBy = errors.New("unknown grouping dimension")
)
