package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance Report
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Time Summary Report
	GetTimeSummaryReport(w http.ResponseWriter, r *http.Request)

	// Payroll Summary Report
	GetPayrollSummaryReport(w http.ResponseWriter, r *http.Request)
	GetPayrollRunDetail(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	payrollService   payrollrun.PayrollService
}

func NewReportHandler(timesheetService timesheet.TimesheetService, payrollService payrollrun.PayrollService) ReportHandler {
	return &reportHandlerImpl{
		timesheetService: timesheetService,
		payrollService:   payrollService,
	}
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := timesheet.AttendanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	result, err := h.timesheetService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTimeSummaryReport handles GET /reports/time-summary
func (h *reportHandlerImpl) GetTimeSummaryReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := timesheet.TimeSummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		GroupBy:   r.URL.Query().Get("group_by"),
	}

	result, err := h.timesheetService.GenerateTimeSummaryReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollSummaryReport handles GET /reports/payroll-summary
func (h *reportHandlerImpl) GetPayrollSummaryReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := payrollrun.PayrollSummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.payrollService.GeneratePayrollSummary(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollRunDetail handles GET /reports/payroll-runs/{id}
func (h *reportHandlerImpl) GetPayrollRunDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetPayrollRunDetail(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
