package timesheet

import (
	"math"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
)

// SplitHours divides a day's worked hours at the daily display threshold.
// This is a per-day rule for report display; the payable weekly-overtime
// computation belongs to the payroll calculation service and the two must
// never be conflated. Centralized here so every view splits identically.
func SplitHours(hoursWorked float64, dailyThreshold float64) timesheet.HourSplit {
	if dailyThreshold <= 0 {
		dailyThreshold = timesheet.DefaultPolicy().DailyOvertimeThreshold
	}
	return timesheet.HourSplit{
		RegularHours:  math.Min(hoursWorked, dailyThreshold),
		OvertimeHours: math.Max(0, hoursWorked-dailyThreshold),
	}
}
