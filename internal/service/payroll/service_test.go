package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// ========== in-memory repositories ==========

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range m.employees {
		if emp.CompanyID == companyID && emp.Status == employee.StatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

type memPeriodRepo struct {
	mu      sync.Mutex
	periods map[string]period.PayrollPeriod
	totals  map[string]period.PeriodTotals
}

func (m *memPeriodRepo) Create(_ context.Context, p period.PayrollPeriod) (period.PayrollPeriod, error) {
	m.periods[p.ID] = p
	return p, nil
}

func (m *memPeriodRepo) GetByID(_ context.Context, id string, companyID string) (period.PayrollPeriod, error) {
	p, ok := m.periods[id]
	if !ok || p.CompanyID != companyID {
		return period.PayrollPeriod{}, period.ErrPeriodNotFound
	}
	return p, nil
}

func (m *memPeriodRepo) ListByCompanyID(_ context.Context, companyID string) ([]period.PayrollPeriod, error) {
	var out []period.PayrollPeriod
	for _, p := range m.periods {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPeriodRepo) UpdateTotals(_ context.Context, id string, _ string, totals period.PeriodTotals) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals[id] = totals
	return nil
}

func (m *memPeriodRepo) CloseEnded(_ context.Context, asOf time.Time) (int, error) {
	count := 0
	for id, p := range m.periods {
		if p.Status == period.StatusOpen && p.PayDate.Before(asOf) {
			p.Status = period.StatusClosed
			m.periods[id] = p
			count++
		}
	}
	return count, nil
}

type memAttendanceRepo struct {
	days     map[string][]attendance.DayRecord
	holidays []attendance.Holiday
	requests map[string]attendance.OvertimeRequest
}

func (m *memAttendanceRepo) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.DayRecord, error) {
	var out []attendance.DayRecord
	for _, d := range m.days[employeeID] {
		if !d.Date.Before(start) && !d.Date.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) ListHolidaysInRange(_ context.Context, _ string, start, end time.Time) ([]attendance.Holiday, error) {
	var out []attendance.Holiday
	for _, h := range m.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) GetOvertimeRequests(_ context.Context, ids []string) (map[string]attendance.OvertimeRequest, error) {
	out := make(map[string]attendance.OvertimeRequest)
	for _, id := range ids {
		if req, ok := m.requests[id]; ok {
			out[id] = req
		}
	}
	return out, nil
}

type memAdjustmentRepo struct {
	mu           sync.Mutex
	adjustments  map[string][]adjustment.PayAdjustment
	applications []adjustment.Application
}

func (m *memAdjustmentRepo) ListActiveByEmployee(_ context.Context, employeeID string) ([]adjustment.PayAdjustment, error) {
	var out []adjustment.PayAdjustment
	for _, a := range m.adjustments[employeeID] {
		if a.Status == adjustment.StatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAdjustmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]adjustment.PayAdjustment, error) {
	return m.adjustments[employeeID], nil
}

func (m *memAdjustmentRepo) ApplicationsForPeriod(_ context.Context, employeeID, periodID string) (map[string]adjustment.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]adjustment.Application)
	for _, app := range m.applications {
		if app.PeriodID != periodID {
			continue
		}
		for _, a := range m.adjustments[employeeID] {
			if a.ID == app.AdjustmentID {
				out[app.AdjustmentID] = app
			}
		}
	}
	return out, nil
}

func (m *memAdjustmentRepo) RecordApplication(_ context.Context, app adjustment.Application) (adjustment.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.applications {
		if existing.AdjustmentID == app.AdjustmentID && existing.PeriodID == app.PeriodID {
			return adjustment.Application{}, adjustment.ErrAlreadyApplied
		}
	}
	m.applications = append(m.applications, app)
	return app, nil
}

type memLoanRepo struct {
	mu       sync.Mutex
	loans    map[string][]loan.EmployeeLoan
	payments []loan.Payment
}

func (m *memLoanRepo) ListDeductibleByEmployee(_ context.Context, employeeID string) ([]loan.EmployeeLoan, error) {
	var out []loan.EmployeeLoan
	for _, l := range m.loans[employeeID] {
		if l.Deductible() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLoanRepo) ListByEmployee(_ context.Context, employeeID string) ([]loan.EmployeeLoan, error) {
	return m.loans[employeeID], nil
}

func (m *memLoanRepo) PaymentsForPeriod(_ context.Context, employeeID, periodID string) (map[string]loan.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]loan.Payment)
	for _, p := range m.payments {
		if p.PeriodID != periodID {
			continue
		}
		for _, l := range m.loans[employeeID] {
			if l.ID == p.LoanID {
				out[p.LoanID] = p
			}
		}
	}
	return out, nil
}

func (m *memLoanRepo) RecordPayment(_ context.Context, payment loan.Payment) (loan.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.payments {
		if existing.LoanID == payment.LoanID && existing.PeriodID == payment.PeriodID {
			return loan.Payment{}, loan.ErrDuplicatePeriod
		}
	}
	m.payments = append(m.payments, payment)

	for empID, loans := range m.loans {
		for i, l := range loans {
			if l.ID == payment.LoanID {
				l.TotalPaid = l.TotalPaid.Add(payment.Amount)
				l.RemainingBalance = l.RemainingBalance.Sub(payment.Amount)
				if !l.RemainingBalance.IsPositive() {
					l.Status = loan.StatusCompleted
				}
				m.loans[empID][i] = l
			}
		}
	}
	return payment, nil
}

type memPayrollRepo struct {
	mu      sync.Mutex
	entries map[string]payroll.Entry
	lines   map[string][]payroll.LineItem
}

func (m *memPayrollRepo) GetEntryByID(_ context.Context, id string, companyID string) (payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.CompanyID != companyID {
		return payroll.Entry{}, payroll.ErrEntryNotFound
	}
	return e, nil
}

func (m *memPayrollRepo) GetEntryByEmployeePeriod(_ context.Context, employeeID, periodID string) (payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.EmployeeID == employeeID && e.PeriodID == periodID {
			return e, nil
		}
	}
	return payroll.Entry{}, payroll.ErrEntryNotFound
}

func (m *memPayrollRepo) ListEntriesByPeriod(_ context.Context, periodID string, companyID string) ([]payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []payroll.Entry
	for _, e := range m.entries {
		if e.PeriodID == periodID && e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memPayrollRepo) ListLineItems(_ context.Context, entryID string) ([]payroll.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lines[entryID], nil
}

func (m *memPayrollRepo) ReplaceEntry(_ context.Context, entry payroll.Entry, lines []payroll.LineItem) (payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	m.lines[entry.ID] = lines
	return entry, nil
}

func (m *memPayrollRepo) UpdateEntryStatus(_ context.Context, id string, companyID string, next payroll.EntryStatus, actorID string, at time.Time) (payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.CompanyID != companyID {
		return payroll.Entry{}, payroll.ErrEntryNotFound
	}
	if !e.Status.CanTransitionTo(next) {
		return payroll.Entry{}, payroll.ErrInvalidTransition
	}
	e.Status = next
	switch next {
	case payroll.EntryStatusReviewed:
		e.ReviewedAt, e.ReviewedBy = &at, &actorID
	case payroll.EntryStatusApproved:
		e.ApprovedAt, e.ApprovedBy = &at, &actorID
	case payroll.EntryStatusPaid:
		e.PaidAt, e.PaidBy = &at, &actorID
	}
	m.entries[id] = e
	return e, nil
}

func (m *memPayrollRepo) SummarizePeriod(_ context.Context, periodID string, companyID string) (period.PeriodTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var totals period.PeriodTotals
	for _, e := range m.entries {
		if e.PeriodID != periodID || e.CompanyID != companyID {
			continue
		}
		totals.TotalEmployees++
		totals.TotalGross = totals.TotalGross.Add(e.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(e.TotalDeductions)
		totals.TotalNet = totals.TotalNet.Add(e.NetPay)
	}
	return totals, nil
}

// ========== fixture ==========

type fixture struct {
	svc        *PayrollServiceImpl
	employees  *memEmployeeRepo
	periods    *memPeriodRepo
	attendance *memAttendanceRepo
	adjs       *memAdjustmentRepo
	loans      *memLoanRepo
	entries    *memPayrollRepo
}

const (
	testCompanyID = "co-1"
	testActorID   = "usr-1"
	testPeriodID  = "per-2026-01b"
)

func presentDays(employeeID string, from, count int) []attendance.DayRecord {
	var out []attendance.DayRecord
	for i := 0; i < count; i++ {
		out = append(out, attendance.DayRecord{
			EmployeeID:  employeeID,
			Date:        mustDate(fmt.Sprintf("2026-01-%02d", from+i)),
			Status:      attendance.DayStatusPresent,
			WorkMinutes: 480,
		})
	}
	return out
}

func newFixture() *fixture {
	start := mustDate("2025-06-01")

	f := &fixture{
		employees: &memEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {
				ID: "emp-1", CompanyID: testCompanyID, EmployeeCode: "1001-0001",
				FullName: "Alex Reyes", Status: employee.StatusActive,
				Compensation: &employee.CompensationProfile{
					BasicPay: d("44000"), PayType: employee.PayTypeMonthly, Currency: "PHP",
				},
			},
			"emp-2": {
				ID: "emp-2", CompanyID: testCompanyID, EmployeeCode: "1001-0002",
				FullName: "Sam Cruz", Status: employee.StatusActive,
				Compensation: &employee.CompensationProfile{
					BasicPay: d("1500"), PayType: employee.PayTypeDaily, Currency: "PHP",
				},
			},
			// No compensation profile: always skipped.
			"emp-3": {
				ID: "emp-3", CompanyID: testCompanyID, EmployeeCode: "1001-0003",
				FullName: "Toni Santos", Status: employee.StatusActive,
			},
		}},
		periods: &memPeriodRepo{
			periods: map[string]period.PayrollPeriod{
				testPeriodID: {
					ID: testPeriodID, CompanyID: testCompanyID,
					CutoffStart: mustDate("2026-01-16"), CutoffEnd: mustDate("2026-01-31"),
					PayDate: mustDate("2026-02-05"), PeriodNumber: 2,
					CycleType: period.CycleSemiMonthly, Status: period.StatusOpen,
				},
			},
			totals: map[string]period.PeriodTotals{},
		},
		attendance: &memAttendanceRepo{
			days: map[string][]attendance.DayRecord{
				"emp-1": presentDays("emp-1", 16, 11),
				"emp-2": presentDays("emp-2", 16, 10),
			},
			requests: map[string]attendance.OvertimeRequest{},
		},
		adjs: &memAdjustmentRepo{adjustments: map[string][]adjustment.PayAdjustment{
			"emp-1": {{
				ID: "adj-1", EmployeeID: "emp-1", CompanyID: testCompanyID,
				Category: adjustment.CategoryEarning,
				Type:     adjustment.TypeMeta{Code: "MEAL", Name: "Meal allowance", IsAllowance: true},
				Amount:   d("1000"), Status: adjustment.StatusActive,
				RecurringStart: &start, Interval: adjustment.IntervalEveryPeriod,
			}},
		}},
		loans: &memLoanRepo{loans: map[string][]loan.EmployeeLoan{
			"emp-1": {{
				ID: "loan-1", EmployeeID: "emp-1", CompanyID: testCompanyID, Name: "Salary loan",
				TotalAmount: d("24000"), TermMonths: 12, MonthlyDeduction: d("2000"),
				TotalPaid: d("14000"), RemainingBalance: d("10000"),
				StartDate: mustDate("2025-06-01"), Status: loan.StatusActive,
			}},
		}},
		entries: &memPayrollRepo{
			entries: map[string]payroll.Entry{},
			lines:   map[string][]payroll.LineItem{},
		},
	}

	clock := func() time.Time { return mustDate("2026-02-01") }

	f.svc = &PayrollServiceImpl{
		PayrollRepository:    f.entries,
		EmployeeRepository:   f.employees,
		PeriodRepository:     f.periods,
		AttendanceRepository: f.attendance,
		AdjustmentRepository: f.adjs,
		LoanRepository:       f.loans,
		deductions: DeductionsComposer{
			SSS:        &fakeSchedule{share: share("900", "1800")},
			PhilHealth: &fakeSchedule{share: share("1100", "1100")},
			PagIbig:    &fakeSchedule{share: share("200", "200")},
			Tax:        &fakeTaxTable{due: contribution.TaxDue{Amount: d("1875.50")}},
		},
		workers: 4,
		now:     clock,
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
	return f
}

// ========== tests ==========

func TestComputeEmployeePersistsEntryAndSideEffects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	// gross: 22000 basic + 1000 allowance
	assert.True(t, resp.GrossPay.Equal(d("23000")), "got %s", resp.GrossPay)
	// deductions: 900 + 550 + 200 + 1875.50 tax + 2000 loan
	assert.True(t, resp.TotalDeductions.Equal(d("5525.50")), "got %s", resp.TotalDeductions)
	assert.True(t, resp.NetPay.Equal(d("17474.50")), "got %s", resp.NetPay)
	assert.Equal(t, string(payroll.EntryStatusComputed), resp.Status)
	require.NotNil(t, resp.ComputedBy)
	assert.Equal(t, testActorID, *resp.ComputedBy)

	require.Len(t, f.entries.entries, 1)
	require.Len(t, f.adjs.applications, 1)
	require.Len(t, f.loans.payments, 1)
	assert.True(t, f.loans.loans["emp-1"][0].RemainingBalance.Equal(d("8000")))
	assert.NotEmpty(t, resp.Earnings)
	assert.NotEmpty(t, resp.Deductions)
}

func TestComputeEmployeeRejectsExistingWithoutForce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	_, err = f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	assert.ErrorIs(t, err, payroll.ErrEntryAlreadyExists)
}

func TestForceRecomputeIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	second, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, true)
	require.NoError(t, err)

	// Identical totals, and the side effects did not double-apply.
	assert.True(t, first.GrossPay.Equal(second.GrossPay))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.True(t, first.LoanDeductions.Equal(second.LoanDeductions))

	assert.Len(t, f.adjs.applications, 1)
	assert.Len(t, f.loans.payments, 1)
	assert.True(t, f.loans.loans["emp-1"][0].RemainingBalance.Equal(d("8000")), "loan collected once")
	assert.Len(t, f.entries.entries, 1, "entry replaced, not duplicated")
}

func TestRecomputeRejectedOnceApproved(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, resp.ID, testCompanyID, payroll.EntryStatusReviewed, testActorID)
	require.NoError(t, err)
	_, err = f.svc.Transition(ctx, resp.ID, testCompanyID, payroll.EntryStatusApproved, testActorID)
	require.NoError(t, err)

	_, err = f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, true)
	assert.ErrorIs(t, err, payroll.ErrEntryNotRecomputable)
}

func TestTransitionRejectsSkippedStep(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	// computed -> approved skips reviewed.
	_, err = f.svc.Transition(ctx, resp.ID, testCompanyID, payroll.EntryStatusApproved, testActorID)
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
}

func TestTransitionStampsActor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, resp.ID, testCompanyID, payroll.EntryStatusReviewed, "reviewer-1")
	require.NoError(t, err)

	stored := f.entries.entries[resp.ID]
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, "reviewer-1", *stored.ReviewedBy)
	assert.NotNil(t, stored.ReviewedAt)
}

func TestPreviewHasNoSideEffects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, testPeriodID, "emp-1", testCompanyID)
	require.NoError(t, err)

	assert.True(t, preview.GrossPay.Equal(d("23000")))
	assert.True(t, preview.NetPay.Equal(d("17474.50")))
	assert.NotEmpty(t, preview.Earnings)
	assert.NotEmpty(t, preview.Items)

	assert.Empty(t, f.entries.entries)
	assert.Empty(t, f.adjs.applications)
	assert.Empty(t, f.loans.payments)
	assert.True(t, f.loans.loans["emp-1"][0].RemainingBalance.Equal(d("10000")))
}

func TestPreviewMatchesPersistedComputation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, testPeriodID, "emp-1", testCompanyID)
	require.NoError(t, err)

	computed, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	assert.True(t, preview.GrossPay.Equal(computed.GrossPay))
	assert.True(t, preview.Deductions.Equal(computed.TotalDeductions))
	assert.True(t, preview.NetPay.Equal(computed.NetPay))
}

func TestPreviewSkippedWithoutCompensation(t *testing.T) {
	f := newFixture()

	preview, err := f.svc.Preview(context.Background(), testPeriodID, "emp-3", testCompanyID)
	require.NoError(t, err)

	assert.True(t, preview.Skipped)
	assert.True(t, preview.GrossPay.IsZero())
}

func TestComputePeriodBatchCounts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.svc.ComputePeriod(ctx, payroll.ComputePeriodRequest{PeriodID: testPeriodID}, testCompanyID, testActorID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Computed)
	assert.Equal(t, 1, result.Skipped, "employee without compensation is skipped, not failed")
	assert.Equal(t, 0, result.Failed)

	totals := f.periods.totals[testPeriodID]
	assert.Equal(t, 2, totals.TotalEmployees)
	assert.True(t, totals.TotalGross.IsPositive())
	assert.True(t, totals.TotalNet.Equal(totals.TotalGross.Sub(totals.TotalDeductions)))
}

func TestComputePeriodSkipsExistingWithoutForce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	result, err := f.svc.ComputePeriod(ctx, payroll.ComputePeriodRequest{PeriodID: testPeriodID}, testCompanyID, testActorID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Computed)
	assert.Equal(t, 2, result.Skipped)
}

func TestComputePeriodExplicitEmployeeList(t *testing.T) {
	f := newFixture()

	result, err := f.svc.ComputePeriod(context.Background(), payroll.ComputePeriodRequest{
		PeriodID:    testPeriodID,
		EmployeeIDs: []string{"emp-2"},
	}, testCompanyID, testActorID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Computed)
	assert.Len(t, f.entries.entries, 1)
}

func TestComputePeriodValidatesRequest(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ComputePeriod(context.Background(), payroll.ComputePeriodRequest{}, testCompanyID, testActorID)
	assert.Error(t, err)
}

func TestComputeRejectsClosedPeriod(t *testing.T) {
	f := newFixture()
	p := f.periods.periods[testPeriodID]
	p.Status = period.StatusClosed
	f.periods.periods[testPeriodID] = p

	_, err := f.svc.ComputeEmployee(context.Background(), testPeriodID, "emp-1", testCompanyID, testActorID, false)
	assert.ErrorIs(t, err, period.ErrPeriodClosed)

	_, err = f.svc.ComputePeriod(context.Background(), payroll.ComputePeriodRequest{PeriodID: testPeriodID}, testCompanyID, testActorID)
	assert.ErrorIs(t, err, period.ErrPeriodClosed)
}

func TestComputeEmployeeWithoutCompensationErrors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ComputeEmployee(context.Background(), testPeriodID, "emp-3", testCompanyID, testActorID, false)
	assert.ErrorIs(t, err, employee.ErrNoCompensation)
}

func TestGetEntrySplitsLines(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	fetched, err := f.svc.GetEntry(ctx, resp.ID, testCompanyID)
	require.NoError(t, err)

	require.NotEmpty(t, fetched.Earnings)
	require.NotEmpty(t, fetched.Deductions)
	for _, l := range fetched.Earnings {
		assert.Equal(t, string(payroll.LineKindEarning), l.Kind)
	}
	for _, l := range fetched.Deductions {
		assert.Equal(t, string(payroll.LineKindDeduction), l.Kind)
	}
}

func TestListEntriesScopedToCompany(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ComputeEmployee(ctx, testPeriodID, "emp-1", testCompanyID, testActorID, false)
	require.NoError(t, err)

	entries, err := f.svc.ListEntries(ctx, testPeriodID, testCompanyID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = f.svc.ListEntries(ctx, testPeriodID, "other-company")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
