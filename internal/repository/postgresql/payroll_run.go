package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRunRepository struct {
	db *database.DB
}

// Amount columns are stored as text by the document service; blank or
// garbled values must read as zero, never fail the report.
func scanAmount(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := payrollrun.ParseAmount(*s)
	return &d
}

func scanHours(s *string) *float64 {
	if s == nil {
		return nil
	}
	v := payrollrun.ParseHours(*s)
	return &v
}

// ListOverlapping implements payrollrun.PayrollRunRepository.
func (p *payrollRunRepository) ListOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, period_start, period_end, status,
			   total_employees, total_gross_pay, total_net_pay, total_deductions,
			   total_food_gift_credit, total_paid_sick_leave_hours,
			   total_paid_sick_leave_amount, total_hours
		FROM payroll_runs
		WHERE company_id = $1
		  AND period_start <= $3
		  AND period_end >= $2
		ORDER BY period_start, id
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payrollrun.PayrollRun
	var runIDs []string
	byID := make(map[string]int)

	for rows.Next() {
		var run payrollrun.PayrollRun
		var status string
		var gross, net, deductions, foodGift, sickAmount, sickHours, hours *string
		if err := rows.Scan(
			&run.ID, &run.CompanyID, &run.PeriodStart, &run.PeriodEnd, &status,
			&run.TotalEmployees, &gross, &net, &deductions,
			&foodGift, &sickHours, &sickAmount, &hours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		run.Status = payrollrun.Status(status)
		run.TotalGrossPay = scanAmount(gross)
		run.TotalNetPay = scanAmount(net)
		run.TotalDeductions = scanAmount(deductions)
		run.TotalFoodGiftCredit = scanAmount(foodGift)
		run.TotalPaidSickLeaveAmount = scanAmount(sickAmount)
		run.TotalPaidSickLeaveHours = scanHours(sickHours)
		run.TotalHours = scanHours(hours)

		byID[run.ID] = len(runs)
		runIDs = append(runIDs, run.ID)
		runs = append(runs, run)
	}
	rows.Close()

	if len(runs) == 0 {
		return runs, nil
	}

	if err := p.attachCalculations(ctx, q, runIDs, byID, runs); err != nil {
		return nil, err
	}
	if err := p.attachTimeSummaries(ctx, q, runIDs, byID, runs); err != nil {
		return nil, err
	}

	return runs, nil
}

func (p *payrollRunRepository) attachCalculations(ctx context.Context, q database.Querier, runIDs []string, byID map[string]int, runs []payrollrun.PayrollRun) error {
	query := `
		SELECT payroll_run_id, employee_id,
			   COALESCE(gross_pay, ''), COALESCE(net_pay, ''), COALESCE(deductions, ''),
			   COALESCE(food_gift_credit, ''), COALESCE(paid_sick_leave_hours, ''),
			   COALESCE(paid_sick_leave_amount, '')
		FROM payroll_calculations
		WHERE payroll_run_id = ANY($1)
		ORDER BY payroll_run_id, employee_id
	`

	rows, err := q.Query(ctx, query, runIDs)
	if err != nil {
		return fmt.Errorf("failed to query payroll calculations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var runID string
		var calc payrollrun.Calculation
		var gross, net, deductions, foodGift, sickHours, sickAmount string
		if err := rows.Scan(&runID, &calc.EmployeeID, &gross, &net, &deductions, &foodGift, &sickHours, &sickAmount); err != nil {
			return fmt.Errorf("failed to scan payroll calculation: %w", err)
		}
		calc.GrossPay = payrollrun.ParseAmount(gross)
		calc.NetPay = payrollrun.ParseAmount(net)
		calc.Deductions = payrollrun.ParseAmount(deductions)
		calc.FoodGiftCredit = payrollrun.ParseAmount(foodGift)
		calc.PaidSickLeaveHours = payrollrun.ParseHours(sickHours)
		calc.PaidSickLeaveAmount = payrollrun.ParseAmount(sickAmount)

		if idx, ok := byID[runID]; ok {
			runs[idx].Calculations = append(runs[idx].Calculations, calc)
		}
	}

	return nil
}

func (p *payrollRunRepository) attachTimeSummaries(ctx context.Context, q database.Querier, runIDs []string, byID map[string]int, runs []payrollrun.PayrollRun) error {
	query := `
		SELECT payroll_run_id, employee_id, COALESCE(hours_worked, '')
		FROM payroll_time_summaries
		WHERE payroll_run_id = ANY($1)
		ORDER BY payroll_run_id, employee_id
	`

	rows, err := q.Query(ctx, query, runIDs)
	if err != nil {
		return fmt.Errorf("failed to query payroll time summaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var runID string
		var ts payrollrun.TimeSummary
		var hours string
		if err := rows.Scan(&runID, &ts.EmployeeID, &hours); err != nil {
			return fmt.Errorf("failed to scan payroll time summary: %w", err)
		}
		ts.HoursWorked = payrollrun.ParseHours(hours)

		if idx, ok := byID[runID]; ok {
			runs[idx].TimeSummaries = append(runs[idx].TimeSummaries, ts)
		}
	}

	return nil
}

// GetByID implements payrollrun.PayrollRunRepository.
func (p *payrollRunRepository) GetByID(ctx context.Context, id string, companyID string) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, period_start, period_end, status,
			   total_employees, total_gross_pay, total_net_pay, total_deductions,
			   total_food_gift_credit, total_paid_sick_leave_hours,
			   total_paid_sick_leave_amount, total_hours
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	var run payrollrun.PayrollRun
	var status string
	var gross, net, deductions, foodGift, sickAmount, sickHours, hours *string
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&run.ID, &run.CompanyID, &run.PeriodStart, &run.PeriodEnd, &status,
		&run.TotalEmployees, &gross, &net, &deductions,
		&foodGift, &sickHours, &sickAmount, &hours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollrun.PayrollRun{}, payrollrun.ErrPayrollRunNotFound
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to get payroll run by ID: %w", err)
	}
	run.Status = payrollrun.Status(status)
	run.TotalGrossPay = scanAmount(gross)
	run.TotalNetPay = scanAmount(net)
	run.TotalDeductions = scanAmount(deductions)
	run.TotalFoodGiftCredit = scanAmount(foodGift)
	run.TotalPaidSickLeaveAmount = scanAmount(sickAmount)
	run.TotalPaidSickLeaveHours = scanHours(sickHours)
	run.TotalHours = scanHours(hours)

	byID := map[string]int{run.ID: 0}
	runs := []payrollrun.PayrollRun{run}
	if err := p.attachCalculations(ctx, q, []string{run.ID}, byID, runs); err != nil {
		return payrollrun.PayrollRun{}, err
	}
	if err := p.attachTimeSummaries(ctx, q, []string{run.ID}, byID, runs); err != nil {
		return payrollrun.PayrollRun{}, err
	}

	return runs[0], nil
}

func NewPayrollRunRepository(db *database.DB) payrollrun.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}
