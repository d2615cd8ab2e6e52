package timesheet

import (
	"context"
)

// TimesheetService turns raw punch data into display reports.
type TimesheetService interface {
	// GenerateAttendanceReport reconciles punches into one record per
	// employee-day over the requested range, with the per-day hour split.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReportResponse, error)

	// GenerateTimeSummaryReport aggregates reconciled daily records into
	// rows grouped by employee, day, week, or department.
	GenerateTimeSummaryReport(ctx context.Context, req TimeSummaryRequest) (TimeSummaryResponse, error)
}
