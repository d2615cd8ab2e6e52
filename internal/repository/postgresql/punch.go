package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// ListByDateRange implements punch.PunchRepository. Rows are returned in
// insertion order on purpose: the terminals sync in batches and arrival
// order says nothing about event order, so the normalizer sorts anyway.
func (p *punchRepository) ListByDateRange(ctx context.Context, companyID string, start, end time.Time, employeeID *string) ([]punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT employee_id, record_time, record_type
		FROM punch_events
		WHERE company_id = $1
		  AND record_time >= $2
		  AND record_time < $3::date + 1
	`
	args := []interface{}{companyID, start, end}

	if employeeID != nil && *employeeID != "" {
		query += " AND employee_id = $4"
		args = append(args, *employeeID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", punch.ErrPunchSourceUnavailable, err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var (
			empID      *string
			recordTime *time.Time
			recordType *string
		)
		if err := rows.Scan(&empID, &recordTime, &recordType); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}

		// Nullable columns stay nullable in legacy terminal data; incomplete
		// rows come through as zero values and the normalizer drops them.
		var ev punch.Event
		if empID != nil {
			ev.EmployeeID = *empID
		}
		if recordTime != nil {
			ev.Timestamp = *recordTime
		}
		if recordType != nil {
			ev.Type = punch.Type(*recordType)
		}
		events = append(events, ev)
	}

	return events, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
