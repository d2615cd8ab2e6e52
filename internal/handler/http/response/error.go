package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payrollrun.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidGroupBy):
		BadRequest(w, "Unknown grouping dimension", nil)

	// Upstream source failures surface as hard failures; reports render
	// nothing rather than silently half-reconciled data.
	case errors.Is(err, punch.ErrPunchSourceUnavailable):
		ServiceUnavailable(w, "Punch source is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
