package payrollrun

import (
	"context"
)

// PayrollService reconciles persisted payroll runs into summary reports.
type PayrollService interface {
	// GeneratePayrollSummary merges every run overlapping the requested
	// window into one employee-deduplicated summary.
	GeneratePayrollSummary(ctx context.Context, req PayrollSummaryRequest) (PayrollSummaryResponse, error)

	// GetPayrollRunDetail resolves a single run's totals for drill-down from
	// a summary report.
	GetPayrollRunDetail(ctx context.Context, id string) (PayrollRunDetailResponse, error)
}
