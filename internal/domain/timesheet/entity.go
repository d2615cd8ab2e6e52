package timesheet

import (
	"time"
)

// BreakInterval is one matched break_start/break_end pair within a day.
type BreakInterval struct {
	Start time.Time
	End   time.Time
}

func (b BreakInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// DailyRecord is the reconciled attendance summary of one employee for one
// calendar day. Records are rebuilt on demand from raw punches and never
// mutated after construction.
type DailyRecord struct {
	EmployeeID     string
	Date           time.Time
	CheckIn        *time.Time
	CheckOut       *time.Time
	Breaks         []BreakInterval
	HoursWorked    float64
	LateArrival    bool
	EarlyDeparture bool
}

// HourSplit divides a day's worked hours into base-rate and premium-rate
// hours under the daily display threshold.
type HourSplit struct {
	RegularHours  float64
	OvertimeHours float64
}

// GroupBy selects the grouping dimension for a period summary.
type GroupBy string

const (
	GroupByEmployee   GroupBy = "employee"
	GroupByDay        GroupBy = "day"
	GroupByWeek       GroupBy = "week"
	GroupByDepartment GroupBy = "department"
)

var GroupByValues = []string{
	string(GroupByEmployee),
	string(GroupByDay),
	string(GroupByWeek),
	string(GroupByDepartment),
}

// PeriodSummaryRow is one aggregated report row. Ephemeral, recomputed per
// request.
type PeriodSummaryRow struct {
	GroupKey      string
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
}

// Policy carries the attendance business-policy constants. These are company
// configuration, not law; every threshold here is injectable.
type Policy struct {
	// DailyOvertimeThreshold is the per-day hours boundary for the
	// regular/overtime display split.
	DailyOvertimeThreshold float64

	// LateArrivalHour flags a day late when the first check-in's hour of
	// day is at or past it.
	LateArrivalHour int

	// EarlyDepartureHour flags a day as an early departure when the last
	// check-out's hour of day is before it.
	EarlyDepartureHour int

	// DefaultBreakDeduction is charged once per unmatched break marker when
	// break punches cannot be paired.
	DefaultBreakDeduction time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		DailyOvertimeThreshold: 8.0,
		LateArrivalHour:        9,
		EarlyDepartureHour:     17,
		DefaultBreakDeduction:  30 * time.Minute,
	}
}
