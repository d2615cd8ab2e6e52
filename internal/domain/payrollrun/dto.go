package payrollrun

import (
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollSummaryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *PayrollSummaryRequest) Validate() error {
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

type PayrollSummaryResponse struct {
	ReportID    string `json:"report_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	TotalEmployees           int             `json:"total_employees"`
	TotalGrossPay            decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay              decimal.Decimal `json:"total_net_pay"`
	TotalDeductions          decimal.Decimal `json:"total_deductions"`
	TotalFoodGiftCredit      decimal.Decimal `json:"total_food_gift_credit"`
	TotalPaidSickLeaveHours  float64         `json:"total_paid_sick_leave_hours"`
	TotalPaidSickLeaveAmount decimal.Decimal `json:"total_paid_sick_leave_amount"`
	TotalHours               float64         `json:"total_hours"`

	Payrolls []PayrollRunRef `json:"payrolls"`
}

// PayrollRunRef identifies one included source run for drill-down.
type PayrollRunRef struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`
}

type PayrollRunDetailResponse struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`

	TotalEmployees           int             `json:"total_employees"`
	TotalGrossPay            decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay              decimal.Decimal `json:"total_net_pay"`
	TotalDeductions          decimal.Decimal `json:"total_deductions"`
	TotalFoodGiftCredit      decimal.Decimal `json:"total_food_gift_credit"`
	TotalPaidSickLeaveHours  float64         `json:"total_paid_sick_leave_hours"`
	TotalPaidSickLeaveAmount decimal.Decimal `json:"total_paid_sick_leave_amount"`
	TotalHours               float64         `json:"total_hours"`

	Calculations  []CalculationResponse `json:"calculations"`
	TimeSummaries []TimeSummaryResponse `json:"time_summaries"`
}

type CalculationResponse struct {
	EmployeeID          string          `json:"employee_id"`
	GrossPay            decimal.Decimal `json:"gross_pay"`
	NetPay              decimal.Decimal `json:"net_pay"`
	Deductions          decimal.Decimal `json:"deductions"`
	FoodGiftCredit      decimal.Decimal `json:"food_gift_credit"`
	PaidSickLeaveHours  float64         `json:"paid_sick_leave_hours"`
	PaidSickLeaveAmount decimal.Decimal `json:"paid_sick_leave_amount"`
}

type TimeSummaryResponse struct {
	EmployeeID  string  `json:"employee_id"`
	HoursWorked float64 `json:"hours_worked"`
}
