package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// displaySplitNote labels every time-summary response so the daily-threshold
// split is never mistaken for payable overtime.
const displaySplitNote = "regular/overtime columns use the daily display threshold; payable overtime is computed by the payroll service"

type TimesheetServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	policy       timesheet.Policy
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	policy timesheet.Policy,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *TimesheetServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// GenerateAttendanceReport implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GenerateAttendanceReport(ctx context.Context, req timesheet.AttendanceReportRequest) (timesheet.AttendanceReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.AttendanceReportResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return timesheet.AttendanceReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID, companyID); err != nil {
			return timesheet.AttendanceReportResponse{}, err
		}
	}

	roster, err := s.loadRoster(ctx, companyID)
	if err != nil {
		return timesheet.AttendanceReportResponse{}, err
	}

	events, err := s.punchRepo.ListByDateRange(ctx, companyID, start, end, req.EmployeeID)
	if err != nil {
		return timesheet.AttendanceReportResponse{}, fmt.Errorf("failed to get punch events: %w", err)
	}

	records := make([]timesheet.DailyRecordResponse, 0)
	discardedTotal := 0
	for _, group := range Normalize(events) {
		rec, discarded, ok := BuildDailyRecord(group, s.policy)
		discardedTotal += discarded
		if !ok {
			continue
		}
		records = append(records, mapDailyRecordToResponse(rec, s.policy, roster))
	}

	return timesheet.AttendanceReportResponse{
		ReportID:       uuid.NewString(),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		DiscardedPairs: discardedTotal,
		Records:        records,
	}, nil
}

// GenerateTimeSummaryReport implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GenerateTimeSummaryReport(ctx context.Context, req timesheet.TimeSummaryRequest) (timesheet.TimeSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeSummaryResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return timesheet.TimeSummaryResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	roster, err := s.loadRoster(ctx, companyID)
	if err != nil {
		return timesheet.TimeSummaryResponse{}, err
	}

	events, err := s.punchRepo.ListByDateRange(ctx, companyID, start, end, nil)
	if err != nil {
		return timesheet.TimeSummaryResponse{}, fmt.Errorf("failed to get punch events: %w", err)
	}

	daily := make([]timesheet.DailyRecord, 0)
	for _, group := range Normalize(events) {
		rec, _, ok := BuildDailyRecord(group, s.policy)
		if !ok {
			continue
		}
		daily = append(daily, rec)
	}

	rows, err := Aggregate(daily, timesheet.GroupBy(req.GroupBy), s.policy, roster)
	if err != nil {
		return timesheet.TimeSummaryResponse{}, err
	}

	rowResponses := make([]timesheet.PeriodSummaryRowResponse, 0, len(rows))
	for _, row := range rows {
		rowResponses = append(rowResponses, timesheet.PeriodSummaryRowResponse{
			GroupKey:      row.GroupKey,
			TotalHours:    row.TotalHours,
			RegularHours:  row.RegularHours,
			OvertimeHours: row.OvertimeHours,
		})
	}

	return timesheet.TimeSummaryResponse{
		ReportID:    uuid.NewString(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GroupBy:     req.GroupBy,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Note:        displaySplitNote,
		Rows:        rowResponses,
	}, nil
}

func (s *TimesheetServiceImpl) loadRoster(ctx context.Context, companyID string) (map[string]employee.Employee, error) {
	employees, err := s.employeeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	roster := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		roster[emp.ID] = emp
	}
	return roster, nil
}

// mapDailyRecordToResponse converts a DailyRecord entity to DailyRecordResponse
func mapDailyRecordToResponse(rec timesheet.DailyRecord, policy timesheet.Policy, roster map[string]employee.Employee) timesheet.DailyRecordResponse {
	split := SplitHours(rec.HoursWorked, policy.DailyOvertimeThreshold)

	breaks := make([]timesheet.BreakResponse, 0, len(rec.Breaks))
	for _, br := range rec.Breaks {
		breaks = append(breaks, timesheet.BreakResponse{
			Start: br.Start.Format("2006-01-02 15:04:05"),
			End:   br.End.Format("2006-01-02 15:04:05"),
		})
	}

	resp := timesheet.DailyRecordResponse{
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeID,
		Date:           rec.Date.Format("2006-01-02"),
		CheckIn:        timePtrToString(rec.CheckIn),
		CheckOut:       timePtrToString(rec.CheckOut),
		Breaks:         breaks,
		HoursWorked:    rec.HoursWorked,
		RegularHours:   split.RegularHours,
		OvertimeHours:  split.OvertimeHours,
		LateArrival:    rec.LateArrival,
		EarlyDeparture: rec.EarlyDeparture,
	}
	if emp, ok := roster[rec.EmployeeID]; ok {
		resp.EmployeeName = emp.DisplayName()
		resp.EmployeeCode = emp.EmployeeCode
		resp.Department = emp.Department
	}
	return resp
}
