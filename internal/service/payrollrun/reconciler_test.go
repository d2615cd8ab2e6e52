package payrollrun

import (
	"testing"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestReconcile_IncludesOnlyOverlappingRuns(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{ID: "run-jan-a", PeriodStart: day(2024, 1, 1), PeriodEnd: day(2024, 1, 15), TotalGrossPay: decPtr("1000")},
		{ID: "run-jan-b", PeriodStart: day(2024, 1, 10), PeriodEnd: day(2024, 1, 31), TotalGrossPay: decPtr("2000")},
		{ID: "run-feb", PeriodStart: day(2024, 2, 1), PeriodEnd: day(2024, 2, 14), TotalGrossPay: decPtr("4000")},
	}

	s := Reconcile(runs, day(2024, 1, 5), day(2024, 1, 20))

	require.Len(t, s.Payrolls, 2)
	assert.Equal(t, "run-jan-a", s.Payrolls[0].ID)
	assert.Equal(t, "run-jan-b", s.Payrolls[1].ID)
	assert.True(t, s.TotalGrossPay.Equal(decimal.RequireFromString("3000")))
}

func TestReconcile_BoundaryTouchCounts(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{ID: "run-1", PeriodStart: day(2024, 1, 1), PeriodEnd: day(2024, 1, 5), TotalGrossPay: decPtr("100")},
	}

	// The run's last day equals the filter's first day; periods touch, so the
	// run is in.
	s := Reconcile(runs, day(2024, 1, 5), day(2024, 1, 20))

	require.Len(t, s.Payrolls, 1)
	assert.True(t, s.TotalGrossPay.Equal(decimal.RequireFromString("100")))
}

func TestReconcile_TopLevelTotalWinsOverLineItems(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{
			ID:            "run-1",
			PeriodStart:   day(2024, 1, 1),
			PeriodEnd:     day(2024, 1, 15),
			TotalGrossPay: decPtr("5000"),
			Calculations: []payrollrun.Calculation{
				{EmployeeID: "emp-1", GrossPay: decimal.RequireFromString("2400")},
				{EmployeeID: "emp-2", GrossPay: decimal.RequireFromString("2600")},
			},
		},
	}

	s := Reconcile(runs, day(2024, 1, 1), day(2024, 1, 31))

	// 5000, not 5000 + 2400 + 2600.
	assert.True(t, s.TotalGrossPay.Equal(decimal.RequireFromString("5000")))
}

func TestReconcile_FallsBackToLineItemsPerField(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{
			ID:          "run-1",
			PeriodStart: day(2024, 1, 1),
			PeriodEnd:   day(2024, 1, 15),
			// Authoritative gross, missing food-gift total.
			TotalGrossPay: decPtr("5000"),
			Calculations: []payrollrun.Calculation{
				{EmployeeID: "emp-1", GrossPay: decimal.RequireFromString("2400"), FoodGiftCredit: decimal.RequireFromString("50")},
				{EmployeeID: "emp-2", GrossPay: decimal.RequireFromString("2600"), FoodGiftCredit: decimal.RequireFromString("75")},
			},
		},
	}

	s := Reconcile(runs, day(2024, 1, 1), day(2024, 1, 31))

	assert.True(t, s.TotalGrossPay.Equal(decimal.RequireFromString("5000")))
	assert.True(t, s.TotalFoodGiftCredit.Equal(decimal.RequireFromString("125")))
}

func TestReconcile_HoursFallBackToTimeSummaries(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{
			ID:          "run-1",
			PeriodStart: day(2024, 1, 1),
			PeriodEnd:   day(2024, 1, 15),
			TimeSummaries: []payrollrun.TimeSummary{
				{EmployeeID: "emp-1", HoursWorked: 80},
				{EmployeeID: "emp-2", HoursWorked: 72.5},
			},
		},
		{
			ID:          "run-2",
			PeriodStart: day(2024, 1, 16),
			PeriodEnd:   day(2024, 1, 31),
			TotalHours:  floatPtr(150),
		},
	}

	s := Reconcile(runs, day(2024, 1, 1), day(2024, 1, 31))

	assert.InDelta(t, 302.5, s.TotalHours, 1e-9)
}

func TestReconcile_DeduplicatesEmployeesAcrossRuns(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{
			ID:          "run-1",
			PeriodStart: day(2024, 1, 1),
			PeriodEnd:   day(2024, 1, 15),
			Calculations: []payrollrun.Calculation{
				{EmployeeID: "emp-1"},
				{EmployeeID: "emp-2"},
			},
		},
		{
			ID:          "run-2",
			PeriodStart: day(2024, 1, 10),
			PeriodEnd:   day(2024, 1, 31),
			Calculations: []payrollrun.Calculation{
				{EmployeeID: "emp-1"},
				{EmployeeID: "emp-3"},
			},
		},
	}

	s := Reconcile(runs, day(2024, 1, 1), day(2024, 1, 31))

	assert.Equal(t, 3, s.TotalEmployees)
}

func TestReconcile_HeadcountFromReportedTotalWhenNoLineItems(t *testing.T) {
	t.Parallel()

	runs := []payrollrun.PayrollRun{
		{ID: "run-1", PeriodStart: day(2024, 1, 1), PeriodEnd: day(2024, 1, 15), TotalEmployees: intPtr(12)},
		{ID: "run-2", PeriodStart: day(2024, 1, 16), PeriodEnd: day(2024, 1, 31), TotalEmployees: intPtr(9)},
	}

	s := Reconcile(runs, day(2024, 1, 1), day(2024, 1, 31))

	// Without line items there is nothing to deduplicate; the largest
	// reported headcount is the best available figure.
	assert.Equal(t, 12, s.TotalEmployees)
}

func TestReconcile_EmptyWindow(t *testing.T) {
	t.Parallel()

	s := Reconcile(nil, day(2024, 1, 1), day(2024, 1, 31))

	assert.Empty(t, s.Payrolls)
	assert.Zero(t, s.TotalEmployees)
	assert.True(t, s.TotalGrossPay.IsZero())
	assert.True(t, s.TotalNetPay.IsZero())
	assert.Zero(t, s.TotalHours)
}
