package payrollrun

import (
	"context"
	"time"
)

// PayrollRunRepository reads persisted payroll documents.
type PayrollRunRepository interface {
	// ListOverlapping returns every run whose pay period intersects
	// [start, end], with calculation and time-summary line items attached.
	ListOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]PayrollRun, error)

	GetByID(ctx context.Context, id string, companyID string) (PayrollRun, error)
}
