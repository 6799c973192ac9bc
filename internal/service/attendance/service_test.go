package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type fakeAttendanceRepo struct {
	byCode   map[string]attendance.Attendance
	byDay    map[string]bool // employeeID + "|" + date
	nextSeq  int
	clockOut int // SetClockOut invocations
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		byCode: make(map[string]attendance.Attendance),
		byDay:  make(map[string]bool),
	}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(time.DateOnly)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if f.byDay[dayKey(att.EmployeeID, att.Date)] {
		return attendance.Attendance{}, attendance.ErrDuplicateAttendance
	}
	f.nextSeq++
	att.ID = fmt.Sprintf("id-%d", f.nextSeq)
	att.AttendanceCode = fmt.Sprintf("ATT%03d", f.nextSeq)
	f.byCode[att.AttendanceCode] = att
	f.byDay[dayKey(att.EmployeeID, att.Date)] = true
	return att, nil
}

func (f *fakeAttendanceRepo) GetByCode(ctx context.Context, code string) (attendance.Attendance, error) {
	att, ok := f.byCode[code]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) HasForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return f.byDay[dayKey(employeeID, date)], nil
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, code string, clockOut time.Time) (attendance.Attendance, error) {
	att, ok := f.byCode[code]
	if !ok || att.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	f.clockOut++
	att.ClockOut = &clockOut
	f.byCode[code] = att
	return att, nil
}

func (f *fakeAttendanceRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	byCode   map[string]employee.Employee
	byID     map[string]employee.Employee
	accruals map[string][]decimal.Decimal
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		byCode:   make(map[string]employee.Employee),
		byID:     make(map[string]employee.Employee),
		accruals: make(map[string][]decimal.Decimal),
	}
	for _, e := range emps {
		f.byCode[e.EmployeeCode] = e
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee, passwordHash *string) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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
	f.accruals[employeeID] = append(f.accruals[employeeID], hours)
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

func newTestService(attRepo attendance.AttendanceRepository, empRepo employee.EmployeeRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		now:                  func() time.Time { return now },
		withTx: func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func contractEmployee() employee.Employee {
	emp := employee.New(employee.TypeContract)
	emp.ID = "emp-1"
	emp.EmployeeCode = "EMP001"
	emp.Name = "Dana Lee"
	return emp
}

func regularEmployee() employee.Employee {
	emp := employee.New(employee.TypeRegular)
	emp.ID = "emp-2"
	emp.EmployeeCode = "EMP002"
	emp.Name = "Sam Park"
	return emp
}

func TestRecordAttendanceLateAfterStart(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(regularEmployee())
	clockIn := time.Date(2024, time.March, 11, 9, 30, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: "EMP002",
		Status:       "Present",
	})
	require.NoError(t, err)

	assert.Equal(t, "Late", resp.Status)
	assert.Equal(t, "Sam Park", resp.EmployeeName)
	assert.Equal(t, "2024-03-11", resp.Date)

	stored := attRepo.byCode[resp.AttendanceCode]
	assert.Equal(t, attendance.StatusLate, stored.Status)
}

func TestRecordAttendanceOnTimeStaysPresent(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(regularEmployee())
	clockIn := time.Date(2024, time.March, 11, 8, 55, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: "EMP002",
		Status:       "Present",
	})
	require.NoError(t, err)
	assert.Equal(t, "Present", resp.Status)
	assert.False(t, resp.IsAbsentRecord)
}

func TestRecordAttendanceDuplicateSameDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(regularEmployee())
	clockIn := time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	req := attendance.RecordAttendanceRequest{EmployeeCode: "EMP002", Status: "Present"}

	_, err := svc.RecordAttendance(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RecordAttendance(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
	assert.Len(t, attRepo.byCode, 1)
}

func TestRecordAttendanceAbsentFlagsRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(regularEmployee())
	clockIn := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: "EMP002",
		Status:       "Absent",
	})
	require.NoError(t, err)

	// Absent passes through the lateness rule untouched and marks the record.
	assert.Equal(t, "Absent", resp.Status)
	assert.True(t, resp.IsAbsentRecord)
}

func TestRecordAttendanceUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), time.Now())

	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: "EMP999",
		Status:       "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateClockOutAccruesContractHoursOnce(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	emp := contractEmployee()
	empRepo := newFakeEmployeeRepo(emp)

	clockIn := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: emp.EmployeeCode,
		Status:       "Present",
	})
	require.NoError(t, err)

	clockOut := clockIn.Add(8*time.Hour + 30*time.Minute)
	svc.now = func() time.Time { return clockOut }

	out, err := svc.UpdateClockOut(context.Background(), resp.AttendanceCode)
	require.NoError(t, err)
	require.NotNil(t, out.WorkedHours)
	assert.Equal(t, "8.50", *out.WorkedHours)

	require.Len(t, empRepo.accruals[emp.ID], 1)
	assert.True(t, empRepo.accruals[emp.ID][0].Equal(decimal.NewFromFloat(8.5)),
		"accrued %s, want 8.5", empRepo.accruals[emp.ID][0])
}

func TestUpdateClockOutNoAccrualForRegular(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	emp := regularEmployee()
	empRepo := newFakeEmployeeRepo(emp)

	clockIn := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: emp.EmployeeCode,
		Status:       "Present",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return clockIn.Add(8 * time.Hour) }

	_, err = svc.UpdateClockOut(context.Background(), resp.AttendanceCode)
	require.NoError(t, err)
	assert.Empty(t, empRepo.accruals)
}

func TestUpdateClockOutTwice(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	emp := contractEmployee()
	empRepo := newFakeEmployeeRepo(emp)

	clockIn := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, clockIn)

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeCode: emp.EmployeeCode,
		Status:       "Present",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return clockIn.Add(4 * time.Hour) }

	_, err = svc.UpdateClockOut(context.Background(), resp.AttendanceCode)
	require.NoError(t, err)

	_, err = svc.UpdateClockOut(context.Background(), resp.AttendanceCode)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)

	// The second attempt must not touch the accrued total.
	require.Len(t, empRepo.accruals[emp.ID], 1)
	assert.Equal(t, 1, attRepo.clockOut)
}

func TestUpdateClockOutUnknownCode(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), time.Now())

	_, err := svc.UpdateClockOut(context.Background(), "ATT999")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
