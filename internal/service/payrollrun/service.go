package payrollrun

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payrollrun"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	payrollRunRepo payrollrun.PayrollRunRepository
}

func NewPayrollService(payrollRunRepo payrollrun.PayrollRunRepository) payrollrun.PayrollService {
	return &PayrollServiceImpl{
		payrollRunRepo: payrollRunRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *PayrollServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GeneratePayrollSummary implements payrollrun.PayrollService.
func (s *PayrollServiceImpl) GeneratePayrollSummary(ctx context.Context, req payrollrun.PayrollSummaryRequest) (payrollrun.PayrollSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.PayrollSummaryResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return payrollrun.PayrollSummaryResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	runs, err := s.payrollRunRepo.ListOverlapping(ctx, companyID, start, end)
	if err != nil {
		return payrollrun.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll runs: %w", err)
	}

	summary := Reconcile(runs, start, end)

	refs := make([]payrollrun.PayrollRunRef, 0, len(summary.Payrolls))
	for _, run := range summary.Payrolls {
		refs = append(refs, payrollrun.PayrollRunRef{
			ID:          run.ID,
			PeriodStart: run.PeriodStart.Format("2006-01-02"),
			PeriodEnd:   run.PeriodEnd.Format("2006-01-02"),
			Status:      string(run.Status),
		})
	}

	return payrollrun.PayrollSummaryResponse{
		ReportID:                 uuid.NewString(),
		PeriodStart:              req.StartDate,
		PeriodEnd:                req.EndDate,
		GeneratedAt:              time.Now().Format(time.RFC3339),
		TotalEmployees:           summary.TotalEmployees,
		TotalGrossPay:            summary.TotalGrossPay,
		TotalNetPay:              summary.TotalNetPay,
		TotalDeductions:          summary.TotalDeductions,
		TotalFoodGiftCredit:      summary.TotalFoodGiftCredit,
		TotalPaidSickLeaveHours:  summary.TotalPaidSickLeaveHours,
		TotalPaidSickLeaveAmount: summary.TotalPaidSickLeaveAmount,
		TotalHours:               summary.TotalHours,
		Payrolls:                 refs,
	}, nil
}

// GetPayrollRunDetail implements payrollrun.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRunDetail(ctx context.Context, id string) (payrollrun.PayrollRunDetailResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return payrollrun.PayrollRunDetailResponse{}, err
	}

	run, err := s.payrollRunRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.PayrollRunDetailResponse{}, err
	}

	// Reconciling the single run resolves the per-field precedence between
	// its top-level totals and its line items.
	summary := Reconcile([]payrollrun.PayrollRun{run}, run.PeriodStart, run.PeriodEnd)

	calcs := make([]payrollrun.CalculationResponse, 0, len(run.Calculations))
	for _, c := range run.Calculations {
		calcs = append(calcs, payrollrun.CalculationResponse{
			EmployeeID:          c.EmployeeID,
			GrossPay:            c.GrossPay,
			NetPay:              c.NetPay,
			Deductions:          c.Deductions,
			FoodGiftCredit:      c.FoodGiftCredit,
			PaidSickLeaveHours:  c.PaidSickLeaveHours,
			PaidSickLeaveAmount: c.PaidSickLeaveAmount,
		})
	}

	times := make([]payrollrun.TimeSummaryResponse, 0, len(run.TimeSummaries))
	for _, ts := range run.TimeSummaries {
		times = append(times, payrollrun.TimeSummaryResponse{
			EmployeeID:  ts.EmployeeID,
			HoursWorked: ts.HoursWorked,
		})
	}

	return payrollrun.PayrollRunDetailResponse{
		ID:                       run.ID,
		PeriodStart:              run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:                run.PeriodEnd.Format("2006-01-02"),
		Status:                   string(run.Status),
		TotalEmployees:           summary.TotalEmployees,
		TotalGrossPay:            summary.TotalGrossPay,
		TotalNetPay:              summary.TotalNetPay,
		TotalDeductions:          summary.TotalDeductions,
		TotalFoodGiftCredit:      summary.TotalFoodGiftCredit,
		TotalPaidSickLeaveHours:  summary.TotalPaidSickLeaveHours,
		TotalPaidSickLeaveAmount: summary.TotalPaidSickLeaveAmount,
		TotalHours:               summary.TotalHours,
		Calculations:             calcs,
		TimeSummaries:            times,
	}, nil
}
