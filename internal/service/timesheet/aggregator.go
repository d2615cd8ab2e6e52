package timesheet

import (
	"sort"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
)

// WeekStart returns the Monday of the ISO week containing d. Sunday maps to
// the Monday before it, not after.
func WeekStart(d time.Time) time.Time {
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

// Aggregate folds hour-split daily records into one summary row per distinct
// grouping value, sorted lexicographically by group key. A roster employee
// with no punches in the period simply yields no row.
func Aggregate(records []timesheet.DailyRecord, groupBy timesheet.GroupBy, policy timesheet.Policy, roster map[string]employee.Employee) ([]timesheet.PeriodSummaryRow, error) {
	totals := make(map[string]*timesheet.PeriodSummaryRow)

	for _, rec := range records {
		key, err := groupKey(rec, groupBy, roster)
		if err != nil {
			return nil, err
		}
		row, ok := totals[key]
		if !ok {
			row = &timesheet.PeriodSummaryRow{GroupKey: key}
			totals[key] = row
		}
		split := SplitHours(rec.HoursWorked, policy.DailyOvertimeThreshold)
		row.TotalHours += rec.HoursWorked
		row.RegularHours += split.RegularHours
		row.OvertimeHours += split.OvertimeHours
	}

	rows := make([]timesheet.PeriodSummaryRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].GroupKey < rows[j].GroupKey
	})
	return rows, nil
}

func groupKey(rec timesheet.DailyRecord, groupBy timesheet.GroupBy, roster map[string]employee.Employee) (string, error) {
	switch groupBy {
	case timesheet.GroupByDay:
		return rec.Date.Format("2006-01-02"), nil
	case timesheet.GroupByWeek:
		return WeekStart(rec.Date).Format("2006-01-02"), nil
	case timesheet.GroupByDepartment:
		return roster[rec.EmployeeID].Department, nil
	case timesheet.GroupByEmployee:
		// Employee rows key on the display name so the report sorts the way
		// the console lists people.
		if emp, ok := roster[rec.EmployeeID]; ok {
			return emp.DisplayName(), nil
		}
		return rec.EmployeeID, nil
	default:
		return "", timesheet.ErrInvalidGroupBy
	}
}
