package payrollrun

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
	StatusPaid      Status = "paid"
)

// PayrollRun is a persisted, previously computed payroll document covering
// one pay period. Totals are nullable: older documents carry only
// per-employee calculation line items, newer ones also carry authoritative
// top-level totals. Some carry a mix (e.g. authoritative gross/net but no
// food-gift total), so source precedence must be decided per field.
type PayrollRun struct {
	ID          string
	CompanyID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      Status

	TotalEmployees           *int
	TotalGrossPay            *decimal.Decimal
	TotalNetPay              *decimal.Decimal
	TotalDeductions          *decimal.Decimal
	TotalFoodGiftCredit      *decimal.Decimal
	TotalPaidSickLeaveHours  *float64
	TotalPaidSickLeaveAmount *decimal.Decimal
	TotalHours               *float64

	Calculations  []Calculation
	TimeSummaries []TimeSummary
}

// Calculation is one employee's line item inside a payroll run.
type Calculation struct {
	EmployeeID         string
	GrossPay           decimal.Decimal
	NetPay             decimal.Decimal
	Deductions         decimal.Decimal
	FoodGiftCredit     decimal.Decimal
	PaidSickLeaveHours float64
	PaidSickLeaveAmount decimal.Decimal
}

// TimeSummary is one employee's hours line inside a payroll run.
type TimeSummary struct {
	EmployeeID  string
	HoursWorked float64
}

// Overlaps reports whether the run's pay period intersects [start, end].
func (r PayrollRun) Overlaps(start, end time.Time) bool {
	return !r.PeriodStart.After(end) && !r.PeriodEnd.Before(start)
}

// Summary is the reconciled total over every run intersecting a reporting
// window. Transient; recomputed per request.
type Summary struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalEmployees           int
	TotalGrossPay            decimal.Decimal
	TotalNetPay              decimal.Decimal
	TotalDeductions          decimal.Decimal
	TotalFoodGiftCredit      decimal.Decimal
	TotalPaidSickLeaveHours  float64
	TotalPaidSickLeaveAmount decimal.Decimal
	TotalHours               float64

	// Payrolls are the included source runs, for drill-down.
	Payrolls []PayrollRun
}

// ParseAmount reads an externally supplied amount string. The document
// source stores amounts as text and older documents leave fields blank or
// garbled; those normalize to zero rather than failing the whole report.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseHours reads an externally supplied hours string with the same
// never-fail contract as ParseAmount.
func ParseHours(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
