package punch

import (
	"context"
	"time"
)

// PunchRepository reads raw clock events from the punch source. The source
// guarantees neither ordering nor completeness; consumers must sort and
// filter defensively.
type PunchRepository interface {
	// ListByDateRange returns all events recorded in [start, end] for the
	// company, optionally restricted to a single employee.
	ListByDateRange(ctx context.Context, companyID string, start, end time.Time, employeeID *string) ([]Event, error)
}
