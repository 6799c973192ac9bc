package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	byCode  map[string]payroll.Payroll
	nextSeq int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{byCode: make(map[string]payroll.Payroll)}
}

func (f *fakePayrollRepo) Create(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	for _, existing := range f.byCode {
		if existing.EmployeeID == rec.EmployeeID &&
			existing.PeriodStart.Equal(rec.PeriodStart) &&
			existing.PeriodEnd.Equal(rec.PeriodEnd) {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
	}
	f.nextSeq++
	rec.ID = fmt.Sprintf("id-%d", f.nextSeq)
	rec.PayrollCode = fmt.Sprintf("PAY%03d", f.nextSeq)
	f.byCode[rec.PayrollCode] = rec
	return rec, nil
}

func (f *fakePayrollRepo) GetByCode(ctx context.Context, code string) (payroll.Payroll, error) {
	rec, ok := f.byCode[code]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	for _, rec := range f.byCode {
		if rec.EmployeeID == employeeID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (f *fakePayrollRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	for _, rec := range f.byCode {
		if rec.PeriodStart.Year() == year && rec.PeriodStart.Month() == month {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	if _, ok := f.byCode[rec.PayrollCode]; !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	f.byCode[rec.PayrollCode] = rec
	return rec, nil
}

func (f *fakePayrollRepo) MarkMonthPaid(ctx context.Context, year int, month time.Month) (int64, error) {
	var changed int64
	for code, rec := range f.byCode {
		if rec.IsPaid || rec.PeriodStart.Year() != year || rec.PeriodStart.Month() != month {
			continue
		}
		rec.IsPaid = true
		f.byCode[code] = rec
		changed++
	}
	return changed, nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, code string) error {
	if _, ok := f.byCode[code]; !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(f.byCode, code)
	return nil
}

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.byCode[e.EmployeeCode] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee, passwordHash *string) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	emp, ok := f.byCode[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetCredentialsByCode(ctx context.Context, code string) (employee.Employee, string, error) {
	return employee.Employee{}, "", employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) AddContractHours(ctx context.Context, employeeID string, hours decimal.Decimal) error {
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

func testEmployee() employee.Employee {
	emp := employee.New(employee.TypeRegular)
	emp.ID = "emp-1"
	emp.EmployeeCode = "EMP001"
	emp.Name = "Dana Lee"
	return emp
}

func newTestService(payrollRepo payroll.PayrollRepository, empRepo employee.EmployeeRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: empRepo,
	}
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func createReq(base, allowances, deductions string) payroll.CreatePayrollRequest {
	return payroll.CreatePayrollRequest{
		EmployeeCode: "EMP001",
		PeriodStart:  "2024-03-01",
		PeriodEnd:    "2024-03-31",
		BaseSalary:   d(base),
		Allowances:   d(allowances),
		Deductions:   d(deductions),
	}
}

func TestCreateDerivesNetSalary(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), newFakeEmployeeRepo(testEmployee()))

	resp, err := svc.Create(context.Background(), createReq("5000", "200", "300"))
	require.NoError(t, err)

	assert.True(t, resp.NetSalary.Equal(d("4900")), "net = %s", resp.NetSalary)
	assert.Equal(t, "Dana Lee", resp.EmployeeName)
	assert.False(t, resp.IsPaid)
}

func TestCreateDuplicatePeriod(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), newFakeEmployeeRepo(testEmployee()))

	_, err := svc.Create(context.Background(), createReq("5000", "0", "0"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createReq("5000", "0", "0"))
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
}

func TestUpdateRederivesNetSalary(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(testEmployee()))

	created, err := svc.Create(context.Background(), createReq("5000", "200", "300"))
	require.NoError(t, err)

	deductions := d("700")
	resp, err := svc.Update(context.Background(), created.PayrollCode, payroll.UpdatePayrollRequest{
		Deductions: &deductions,
	})
	require.NoError(t, err)

	// 5000 + 200 - 700; the stored net always comes from the components.
	assert.True(t, resp.NetSalary.Equal(d("4500")), "net = %s", resp.NetSalary)
	assert.True(t, resp.BaseSalary.Equal(d("5000")))
}

func TestRunPayrollForMonthIsIdempotent(t *testing.T) {
	repo := newFakePayrollRepo()
	emp := testEmployee()
	svc := newTestService(repo, newFakeEmployeeRepo(emp))

	_, err := svc.Create(context.Background(), createReq("5000", "0", "0"))
	require.NoError(t, err)

	req := createReq("3000", "100", "0")
	req.PeriodStart = "2024-03-02"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	first, err := svc.RunPayrollForMonth(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.RowsPaid)

	second, err := svc.RunPayrollForMonth(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.RowsPaid, "a second run must change nothing")

	records, err := svc.GetByMonth(context.Background(), 2024, time.March)
	require.NoError(t, err)
	for _, rec := range records {
		assert.True(t, rec.IsPaid)
	}
}

func TestGetStatistics(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(testEmployee()))

	for i, components := range [][3]string{
		{"5000", "200", "300"}, // 4900
		{"3000", "0", "0"},     // 3000
		{"8000", "1000", "0"},  // 9000
	} {
		req := createReq(components[0], components[1], components[2])
		req.PeriodStart = fmt.Sprintf("2024-03-%02d", i+1)
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	stats, err := svc.GetStatistics(context.Background(), 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.True(t, stats.Total.Equal(d("16900")), "total = %s", stats.Total)
	assert.True(t, stats.Min.Equal(d("3000")), "min = %s", stats.Min)
	assert.True(t, stats.Max.Equal(d("9000")), "max = %s", stats.Max)
}

func TestGetStatisticsEmptyMonth(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), newFakeEmployeeRepo(testEmployee()))

	stats, err := svc.GetStatistics(context.Background(), 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Count)
	assert.True(t, stats.Total.IsZero())
	assert.True(t, stats.Average.IsZero())
	assert.True(t, stats.Min.IsZero())
	assert.True(t, stats.Max.IsZero())
}

func TestCreateRejectsInvertedPeriod(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(testEmployee()))

	req := createReq("5000", "0", "0")
	req.PeriodStart = "2024-03-31"
	req.PeriodEnd = "2024-03-01"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.byCode)
}
