package payrollrun

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
)

// Reconcile folds every run whose pay period intersects [filterStart,
// filterEnd] into one summary. For each numeric field, a run contributes its
// authoritative top-level total when it carries one, and the sum of its
// per-employee line items otherwise — never both, and the choice is made per
// field because a run can carry authoritative gross/net totals while lacking
// a food-gift total.
func Reconcile(runs []payrollrun.PayrollRun, filterStart, filterEnd time.Time) payrollrun.Summary {
	s := payrollrun.Summary{
		PeriodStart:              filterStart,
		PeriodEnd:                filterEnd,
		TotalGrossPay:            decimal.Zero,
		TotalNetPay:              decimal.Zero,
		TotalDeductions:          decimal.Zero,
		TotalFoodGiftCredit:      decimal.Zero,
		TotalPaidSickLeaveAmount: decimal.Zero,
	}

	seen := make(map[string]struct{})
	maxReported := 0
	hasLineItems := false

	for _, run := range runs {
		if !run.Overlaps(filterStart, filterEnd) {
			continue
		}
		s.Payrolls = append(s.Payrolls, run)

		s.TotalGrossPay = s.TotalGrossPay.Add(amountField(run, run.TotalGrossPay,
			func(c payrollrun.Calculation) decimal.Decimal { return c.GrossPay }))
		s.TotalNetPay = s.TotalNetPay.Add(amountField(run, run.TotalNetPay,
			func(c payrollrun.Calculation) decimal.Decimal { return c.NetPay }))
		s.TotalDeductions = s.TotalDeductions.Add(amountField(run, run.TotalDeductions,
			func(c payrollrun.Calculation) decimal.Decimal { return c.Deductions }))
		s.TotalFoodGiftCredit = s.TotalFoodGiftCredit.Add(amountField(run, run.TotalFoodGiftCredit,
			func(c payrollrun.Calculation) decimal.Decimal { return c.FoodGiftCredit }))
		s.TotalPaidSickLeaveAmount = s.TotalPaidSickLeaveAmount.Add(amountField(run, run.TotalPaidSickLeaveAmount,
			func(c payrollrun.Calculation) decimal.Decimal { return c.PaidSickLeaveAmount }))

		s.TotalPaidSickLeaveHours += hoursField(run.TotalPaidSickLeaveHours, func() float64 {
			var sum float64
			for _, c := range run.Calculations {
				sum += c.PaidSickLeaveHours
			}
			return sum
		})
		s.TotalHours += hoursField(run.TotalHours, func() float64 {
			var sum float64
			for _, ts := range run.TimeSummaries {
				sum += ts.HoursWorked
			}
			return sum
		})

		for _, c := range run.Calculations {
			hasLineItems = true
			seen[c.EmployeeID] = struct{}{}
		}
		if run.TotalEmployees != nil && *run.TotalEmployees > maxReported {
			maxReported = *run.TotalEmployees
		}
	}

	// An employee paid by two overlapping runs counts once. The reported
	// headcount is trusted only when no run carries line items at all.
	if hasLineItems {
		s.TotalEmployees = len(seen)
	} else {
		s.TotalEmployees = maxReported
	}

	return s
}

func amountField(run payrollrun.PayrollRun, top *decimal.Decimal, line func(payrollrun.Calculation) decimal.Decimal) decimal.Decimal {
	if top != nil {
		return *top
	}
	sum := decimal.Zero
	for _, c := range run.Calculations {
		sum = sum.Add(line(c))
	}
	return sum
}

func hoursField(top *float64, sumLines func() float64) float64 {
	if top != nil {
		return *top
	}
	return sumLines()
}
