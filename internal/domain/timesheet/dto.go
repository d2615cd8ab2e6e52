package timesheet

import (
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReportRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	}

	if !validator.IsEmpty(r.StartDate) && !validator.IsEmpty(r.EndDate) {
		start, okStart := validator.IsValidDate(r.StartDate)
		if !okStart {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
		end, okEnd := validator.IsValidDate(r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
		if okStart && okEnd && start.After(end) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceReportResponse struct {
	ReportID    string `json:"report_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	// DiscardedPairs counts check-in/check-out pairs rejected as malformed
	// (negative or longer than 24h). A data-quality signal, not an error.
	DiscardedPairs int `json:"discarded_pairs"`

	Records []DailyRecordResponse `json:"records"`
}

type DailyRecordResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	EmployeeCode   string          `json:"employee_code,omitempty"`
	Department     string          `json:"department,omitempty"`
	Date           string          `json:"date"`
	CheckIn        *string         `json:"check_in,omitempty"`
	CheckOut       *string         `json:"check_out,omitempty"`
	Breaks         []BreakResponse `json:"breaks,omitempty"`
	HoursWorked    float64         `json:"hours_worked"`
	RegularHours   float64         `json:"regular_hours"`
	OvertimeHours  float64         `json:"overtime_hours"`
	LateArrival    bool            `json:"late_arrival"`
	EarlyDeparture bool            `json:"early_departure"`
}

type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ========================================
// TIME SUMMARY REPORT
// ========================================

type TimeSummaryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	GroupBy   string `json:"group_by"`
}

func (r *TimeSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	}

	if !validator.IsEmpty(r.StartDate) && !validator.IsEmpty(r.EndDate) {
		start, okStart := validator.IsValidDate(r.StartDate)
		if !okStart {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
		end, okEnd := validator.IsValidDate(r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
		if okStart && okEnd && start.After(end) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}

	if !validator.IsInSlice(r.GroupBy, GroupByValues) {
		errs = append(errs, validator.ValidationError{Field: "group_by", Message: "must be one of employee, day, week, department"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeSummaryResponse struct {
	ReportID    string `json:"report_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GroupBy     string `json:"group_by"`
	GeneratedAt string `json:"generated_at"`

	// Note reminds display callers that the split is a per-day display rule;
	// payable overtime comes from the payroll calculation service.
	Note string `json:"note"`

	Rows []PeriodSummaryRowResponse `json:"rows"`
}

type PeriodSummaryRowResponse struct {
	GroupKey      string  `json:"group_key"`
	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}
