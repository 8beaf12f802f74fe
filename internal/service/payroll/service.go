package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
	"github.com/suweldo-hq/payroll-engine-go/internal/repository/postgresql"
)

const defaultWorkers = 8

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
	period.PeriodRepository
	attendance.AttendanceRepository
	adjustment.AdjustmentRepository
	loan.LoanRepository

	deductions DeductionsComposer

	// workers bounds the batch fan-out. Keep it below the pool's max
	// connections or a full-period run starves every other query.
	workers int
	now     func() time.Time

	runInTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	periodRepo period.PeriodRepository,
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	loanRepo loan.LoanRepository,
	sss, philHealth, pagIbig contribution.Schedule,
	tax contribution.TaxTable,
	workers int,
	now func() time.Time,
) payroll.PayrollService {
	if workers < 1 {
		workers = defaultWorkers
	}
	if now == nil {
		now = time.Now
	}
	return &PayrollServiceImpl{
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		db:                   db,
		PayrollRepository:    payrollRepo,
		EmployeeRepository:   employeeRepo,
		PeriodRepository:     periodRepo,
		AttendanceRepository: attendanceRepo,
		AdjustmentRepository: adjustmentRepo,
		LoanRepository:       loanRepo,
		deductions: DeductionsComposer{
			SSS:        sss,
			PhilHealth: philHealth,
			PagIbig:    pagIbig,
			Tax:        tax,
		},
		workers: workers,
		now:     now,
	}
}

// ComputeEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeEmployee(ctx context.Context, periodID, employeeID, companyID, actorID string, force bool) (payroll.EntryResponse, error) {
	p, err := s.PeriodRepository.GetByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if p.Status == period.StatusClosed {
		return payroll.EntryResponse{}, period.ErrPeriodClosed
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if emp.Compensation == nil {
		return payroll.EntryResponse{}, employee.ErrNoCompensation
	}

	result, err := s.computeAndPersist(ctx, emp, p, actorID, force)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return toEntryResponse(result.Entry, result.Earnings, result.Deductions), nil
}

// ComputePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputePeriod(ctx context.Context, req payroll.ComputePeriodRequest, companyID, actorID string) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	p, err := s.PeriodRepository.GetByID(ctx, req.PeriodID, companyID)
	if err != nil {
		return payroll.BatchResult{}, err
	}
	if p.Status == period.StatusClosed {
		return payroll.BatchResult{}, period.ErrPeriodClosed
	}

	employees, err := s.batchEmployees(ctx, req, companyID)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	var (
		mu     sync.Mutex
		result payroll.BatchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			_, err := s.computeAndPersist(gctx, emp, p, actorID, req.Force)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Computed++
			case errors.Is(err, employee.ErrNoCompensation),
				errors.Is(err, payroll.ErrEntryAlreadyExists),
				errors.Is(err, payroll.ErrEntryNotRecomputable):
				result.Skipped++
			default:
				result.Failed++
				slog.ErrorContext(gctx, "payroll computation failed",
					"employee_id", emp.ID, "period_id", p.ID, "error", err)
			}
			// One employee's failure never aborts the batch.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	totals, err := s.PayrollRepository.SummarizePeriod(ctx, p.ID, companyID)
	if err != nil {
		return result, fmt.Errorf("summarize period: %w", err)
	}
	if err := s.PeriodRepository.UpdateTotals(ctx, p.ID, companyID, totals); err != nil {
		return result, fmt.Errorf("update period totals: %w", err)
	}

	return result, nil
}

// Preview implements payroll.PayrollService. It runs the identical pipeline
// as ComputeEmployee but writes nothing: no entry, no application records,
// no loan payments.
func (s *PayrollServiceImpl) Preview(ctx context.Context, periodID, employeeID, companyID string) (payroll.PreviewResponse, error) {
	p, err := s.PeriodRepository.GetByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	result, err := s.compute(ctx, emp, p)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	entryResp := toEntryResponse(result.Entry, nil, nil)
	return payroll.PreviewResponse{
		EmployeeID: employeeID,
		PeriodID:   periodID,
		Skipped:    result.Skipped,
		GrossPay:   result.Entry.GrossPay,
		Deductions: result.Entry.TotalDeductions,
		NetPay:     result.Entry.NetPay,
		Entry:      entryResp,
		Earnings:   toLineResponses(result.Earnings),
		Items:      toLineResponses(result.Deductions),
	}, nil
}

// GetEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string, companyID string) (payroll.EntryResponse, error) {
	entry, err := s.PayrollRepository.GetEntryByID(ctx, id, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	lines, err := s.PayrollRepository.ListLineItems(ctx, entry.ID)
	if err != nil {
		return payroll.EntryResponse{}, fmt.Errorf("list line items: %w", err)
	}

	var earnings, deductions []payroll.LineItem
	for _, l := range lines {
		if l.Kind == payroll.LineKindEarning {
			earnings = append(earnings, l)
		} else {
			deductions = append(deductions, l)
		}
	}

	return toEntryResponse(entry, earnings, deductions), nil
}

// ListEntries implements payroll.PayrollService. Line items are omitted
// from listings; fetch a single entry for the itemized view.
func (s *PayrollServiceImpl) ListEntries(ctx context.Context, periodID string, companyID string) ([]payroll.EntryResponse, error) {
	entries, err := s.PayrollRepository.ListEntriesByPeriod(ctx, periodID, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toEntryResponse(e, nil, nil))
	}
	return responses, nil
}

// Transition implements payroll.PayrollService.
func (s *PayrollServiceImpl) Transition(ctx context.Context, entryID string, companyID string, next payroll.EntryStatus, actorID string) (payroll.EntryResponse, error) {
	entry, err := s.PayrollRepository.GetEntryByID(ctx, entryID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if !entry.Status.CanTransitionTo(next) {
		return payroll.EntryResponse{}, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidTransition, entry.Status, next)
	}

	updated, err := s.PayrollRepository.UpdateEntryStatus(ctx, entryID, companyID, next, actorID, s.now().UTC())
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return toEntryResponse(updated, nil, nil), nil
}

// batchEmployees resolves the batch's employee set: the explicit list when
// given, else every active employee of the company.
func (s *PayrollServiceImpl) batchEmployees(ctx context.Context, req payroll.ComputePeriodRequest, companyID string) ([]employee.Employee, error) {
	if len(req.EmployeeIDs) == 0 {
		return s.EmployeeRepository.GetActiveByCompanyID(ctx, companyID)
	}

	employees := make([]employee.Employee, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
		if err != nil {
			return nil, fmt.Errorf("resolve employee %s: %w", id, err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// compute runs the pure pipeline for one employee: gather inputs, summarize
// attendance, resolve adjustments and loans, compose earnings then
// deductions. It persists nothing.
func (s *PayrollServiceImpl) compute(ctx context.Context, emp employee.Employee, p period.PayrollPeriod) (payroll.ComputeResult, error) {
	now := s.now().UTC()

	if emp.Compensation == nil {
		return payroll.ComputeResult{
			Entry: payroll.Entry{
				CompanyID:  emp.CompanyID,
				EmployeeID: emp.ID,
				PeriodID:   p.ID,
				Status:     payroll.EntryStatusDraft,
			},
			Skipped: true,
		}, nil
	}

	days, err := s.AttendanceRepository.ListByEmployeeRange(ctx, emp.ID, p.CutoffStart, p.CutoffEnd)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list attendance: %w", err)
	}

	holidays, err := s.AttendanceRepository.ListHolidaysInRange(ctx, emp.CompanyID, p.CutoffStart, p.CutoffEnd)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list holidays: %w", err)
	}

	requests, err := s.overtimeRequests(ctx, days)
	if err != nil {
		return payroll.ComputeResult{}, err
	}

	candidates, err := s.AdjustmentRepository.ListActiveByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list adjustments: %w", err)
	}
	applied, err := s.AdjustmentRepository.ApplicationsForPeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list adjustment applications: %w", err)
	}

	loans, err := s.LoanRepository.ListDeductibleByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list loans: %w", err)
	}
	paid, err := s.LoanRepository.PaymentsForPeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("list loan payments: %w", err)
	}

	att := SummarizeAttendance(days, holidays, requests, emp.WorkLocationID)
	earningAdjs := ResolveAdjustments(candidates, applied, p, adjustment.CategoryEarning)
	deductionAdjs := ResolveAdjustments(candidates, applied, p, adjustment.CategoryDeduction)
	installments := DueLoanInstallments(loans, paid, p)

	earnings := ComposeEarnings(emp.Compensation, p, att, earningAdjs)
	deductions := s.deductions.Compose(ctx, emp.Compensation, p, earnings.GrossPay, deductionAdjs, installments)

	entry := payroll.Entry{
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		PeriodID:   p.ID,

		DaysWorked:       att.DaysWorked,
		AbsentDays:       att.AbsentDays,
		LateMinutes:      att.LateMinutes,
		UndertimeMinutes: att.UndertimeMinutes,
		OvertimeMinutes:  att.OvertimeMinutes,
		NightDiffMinutes: att.NightDiffMinutes,

		BasicPay:     earnings.BasicPay,
		OvertimePay:  earnings.OvertimePay,
		NightDiffPay: earnings.NightDiffPay,
		HolidayPay:   earnings.HolidayPay,
		Allowances:   earnings.Allowances,
		Bonuses:      earnings.Bonuses,
		GrossPay:     earnings.GrossPay,

		SSSEmployee:        deductions.SSS.Employee,
		SSSEmployer:        deductions.SSS.Employer,
		PhilHealthEmployee: deductions.PhilHealth.Employee,
		PhilHealthEmployer: deductions.PhilHealth.Employer,
		PagIbigEmployee:    deductions.PagIbig.Employee,
		PagIbigEmployer:    deductions.PagIbig.Employer,
		WithholdingTax:     deductions.WithholdingTax,
		LoanDeductions:     deductions.LoanTotal,
		OtherDeductions:    deductions.OtherTotal,
		TotalDeductions:    deductions.TotalEmployee,
		TotalEmployerShare: deductions.TotalEmployer,

		NetPay: earnings.GrossPay.Sub(deductions.TotalEmployee),

		Status: payroll.EntryStatusComputed,
	}

	result := payroll.ComputeResult{
		Entry:      entry,
		Earnings:   earnings.Lines,
		Deductions: deductions.Lines,
	}

	for _, adj := range append(earningAdjs, deductionAdjs...) {
		if adj.AlreadyApplied {
			continue
		}
		result.PendingApplications = append(result.PendingApplications, adjustment.Application{
			AdjustmentID:  adj.Adjustment.ID,
			PeriodID:      p.ID,
			Amount:        adj.Amount,
			BalanceBefore: adj.BalanceBefore,
			BalanceAfter:  adj.BalanceAfter,
			AppliedAt:     now,
		})
	}
	for _, inst := range installments {
		if inst.AlreadyApplied {
			continue
		}
		result.PendingPayments = append(result.PendingPayments, loan.Payment{
			LoanID:        inst.Loan.ID,
			PeriodID:      p.ID,
			Amount:        inst.Amount,
			BalanceBefore: inst.BalanceBefore,
			BalanceAfter:  inst.BalanceAfter,
			PaidAt:        now,
		})
	}

	return result, nil
}

// computeAndPersist computes one employee's entry and swaps it in. The
// entry and its lines commit in one transaction; application and payment
// records are written only after that commit, so a recompute after a crash
// re-emits lines from the pipeline and re-records only what is missing.
func (s *PayrollServiceImpl) computeAndPersist(ctx context.Context, emp employee.Employee, p period.PayrollPeriod, actorID string, force bool) (payroll.ComputeResult, error) {
	existing, err := s.PayrollRepository.GetEntryByEmployeePeriod(ctx, emp.ID, p.ID)
	switch {
	case err == nil:
		if !force {
			return payroll.ComputeResult{}, payroll.ErrEntryAlreadyExists
		}
		if !existing.Status.CanRecompute() {
			return payroll.ComputeResult{}, fmt.Errorf("%w: status %s", payroll.ErrEntryNotRecomputable, existing.Status)
		}
	case errors.Is(err, payroll.ErrEntryNotFound):
		// First computation for this employee/period.
	default:
		return payroll.ComputeResult{}, fmt.Errorf("lookup existing entry: %w", err)
	}

	if emp.Compensation == nil {
		return payroll.ComputeResult{}, employee.ErrNoCompensation
	}

	result, err := s.compute(ctx, emp, p)
	if err != nil {
		return payroll.ComputeResult{}, err
	}

	now := s.now().UTC()
	entry := result.Entry
	if existing.ID != "" {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.ID = uuid.New().String()
	}
	entry.Status = payroll.EntryStatusComputed
	entry.ComputedAt = &now
	entry.ComputedBy = &actorID

	lines := make([]payroll.LineItem, 0, len(result.Earnings)+len(result.Deductions))
	lines = append(lines, result.Earnings...)
	lines = append(lines, result.Deductions...)
	for i := range lines {
		lines[i].ID = uuid.New().String()
		lines[i].EntryID = entry.ID
	}

	err = s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		saved, err := s.PayrollRepository.ReplaceEntry(txCtx, entry, lines)
		if err != nil {
			return err
		}
		result.Entry = saved
		return nil
	})
	if err != nil {
		return payroll.ComputeResult{}, fmt.Errorf("persist entry: %w", err)
	}

	for _, app := range result.PendingApplications {
		app.ID = uuid.New().String()
		app.PayrollEntryID = result.Entry.ID
		app.AppliedBy = actorID
		if _, err := s.AdjustmentRepository.RecordApplication(ctx, app); err != nil {
			return payroll.ComputeResult{}, fmt.Errorf("record adjustment application: %w", err)
		}
	}
	for _, payment := range result.PendingPayments {
		payment.ID = uuid.New().String()
		payment.PayrollEntryID = result.Entry.ID
		if _, err := s.LoanRepository.RecordPayment(ctx, payment); err != nil {
			return payroll.ComputeResult{}, fmt.Errorf("record loan payment: %w", err)
		}
	}

	return result, nil
}

// overtimeRequests fetches the requests linked from the period's records.
func (s *PayrollServiceImpl) overtimeRequests(ctx context.Context, days []attendance.DayRecord) (map[string]attendance.OvertimeRequest, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, d := range days {
		if d.OvertimeRequestID == nil {
			continue
		}
		if _, ok := seen[*d.OvertimeRequestID]; ok {
			continue
		}
		seen[*d.OvertimeRequestID] = struct{}{}
		ids = append(ids, *d.OvertimeRequestID)
	}
	if len(ids) == 0 {
		return map[string]attendance.OvertimeRequest{}, nil
	}

	requests, err := s.AttendanceRepository.GetOvertimeRequests(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get overtime requests: %w", err)
	}
	return requests, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toLineResponses(lines []payroll.LineItem) []payroll.LineItemResponse {
	if len(lines) == 0 {
		return nil
	}
	responses := make([]payroll.LineItemResponse, 0, len(lines))
	for _, l := range lines {
		responses = append(responses, payroll.LineItemResponse{
			ID:              l.ID,
			Kind:            string(l.Kind),
			Type:            string(l.Type),
			Code:            l.Code,
			Description:     l.Description,
			Quantity:        l.Quantity,
			Rate:            l.Rate,
			Multiplier:      l.Multiplier,
			Amount:          l.Amount,
			IsTaxable:       l.IsTaxable,
			IsEmployerShare: l.IsEmployerShare,
		})
	}
	return responses
}

func toEntryResponse(e payroll.Entry, earnings, deductions []payroll.LineItem) payroll.EntryResponse {
	return payroll.EntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: strValue(e.EmployeeName),
		EmployeeCode: strValue(e.EmployeeCode),
		PeriodID:     e.PeriodID,
		Status:       string(e.Status),
		ComputedAt:   timePtrToString(e.ComputedAt),
		ComputedBy:   e.ComputedBy,

		DaysWorked:       e.DaysWorked,
		AbsentDays:       e.AbsentDays,
		LateMinutes:      e.LateMinutes,
		UndertimeMinutes: e.UndertimeMinutes,
		OvertimeMinutes:  e.OvertimeMinutes,
		NightDiffMinutes: e.NightDiffMinutes,

		BasicPay:     e.BasicPay,
		OvertimePay:  e.OvertimePay,
		NightDiffPay: e.NightDiffPay,
		HolidayPay:   e.HolidayPay,
		Allowances:   e.Allowances,
		Bonuses:      e.Bonuses,
		GrossPay:     e.GrossPay,

		SSSEmployee:        e.SSSEmployee,
		SSSEmployer:        e.SSSEmployer,
		PhilHealthEmployee: e.PhilHealthEmployee,
		PhilHealthEmployer: e.PhilHealthEmployer,
		PagIbigEmployee:    e.PagIbigEmployee,
		PagIbigEmployer:    e.PagIbigEmployer,
		WithholdingTax:     e.WithholdingTax,
		LoanDeductions:     e.LoanDeductions,
		OtherDeductions:    e.OtherDeductions,
		TotalDeductions:    e.TotalDeductions,
		TotalEmployerShare: e.TotalEmployerShare,
		NetPay:             e.NetPay,

		Earnings:   toLineResponses(earnings),
		Deductions: toLineResponses(deductions),
	}
}
