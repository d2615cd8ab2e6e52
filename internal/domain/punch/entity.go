package punch

import (
	"time"
)

// Type is the kind of clock event a terminal recorded.
type Type string

const (
	TypeCheckIn    Type = "check_in"
	TypeCheckOut   Type = "check_out"
	TypeBreakStart Type = "break_start"
	TypeBreakEnd   Type = "break_end"
)

// Event is a single raw clock event as recorded by the punch source.
// Events arrive unordered and may be incomplete; an event with an empty
// employee id or a zero timestamp carries no usable information.
type Event struct {
	EmployeeID string
	Timestamp  time.Time
	Type       Type
}

// Usable reports whether the event carries enough data to participate in
// reconciliation.
func (e Event) Usable() bool {
	return e.EmployeeID != "" && !e.Timestamp.IsZero()
}
