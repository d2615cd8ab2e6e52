package payrollrun

import "errors"

var (
	ErrPayrollRunNotFound = errors.New("payroll run not found")
)
