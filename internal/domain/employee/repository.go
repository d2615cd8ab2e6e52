package employee

import (
	"context"
)

// EmployeeRepository reads the roster. The roster is a read-only lookup for
// report labels and grouping; it never participates in hour computation.
type EmployeeRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
}
