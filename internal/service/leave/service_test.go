package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/domain/leave"
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	byCode  map[string]leave.LeaveRequest
	nextSeq int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{byCode: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextSeq++
	req.ID = fmt.Sprintf("id-%d", f.nextSeq)
	req.RequestCode = fmt.Sprintf("LVE%03d", f.nextSeq)
	f.byCode[req.RequestCode] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByCode(ctx context.Context, code string) (leave.LeaveRequest, error) {
	req, ok := f.byCode[code]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, code string, status leave.Status, approverID string, remarks *string) error {
	req, ok := f.byCode[code]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if req.Status.IsTerminal() {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	req.Status = status
	req.ApproverID = &approverID
	if remarks != nil {
		req.Remarks = remarks
	}
	f.byCode[code] = req
	return nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByDate(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
	byID   map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		byCode: make(map[string]employee.Employee),
		byID:   make(map[string]employee.Employee),
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
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

type noopEmailService struct{}

func (noopEmailService) SendLeaveSubmitted(to, employeeName, leaveType, startDate, endDate string) error {
	return nil
}

func (noopEmailService) SendLeaveDecision(to, employeeName, leaveType, status, remarks string) error {
	return nil
}

func testEmployee() employee.Employee {
	emp := employee.New(employee.TypeRegular)
	emp.ID = "emp-1"
	emp.EmployeeCode = "EMP001"
	emp.Name = "Dana Lee"
	emp.Email = "dana.lee@example.com"
	return emp
}

func newTestService(leaveRepo leave.LeaveRequestRepository, empRepo employee.EmployeeRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     empRepo,
		emailService:           noopEmailService{},
		now:                    func() time.Time { return time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC) },
	}
}

func submit(t *testing.T, svc *LeaveServiceImpl, remarks *string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.SubmitLeaveRequest(context.Background(), leave.SubmitLeaveRequestRequest{
		EmployeeCode: "EMP001",
		StartDate:    "2024-04-10",
		EndDate:      "2024-04-12",
		LeaveType:    "Annual",
		Remarks:      remarks,
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitLeaveRequestStartsPending(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	remarks := "family trip"
	resp := submit(t, svc, &remarks)

	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "Dana Lee", resp.EmployeeName)
	require.NotNil(t, resp.Remarks)
	assert.Equal(t, "family trip", *resp.Remarks)
	assert.Nil(t, resp.ApproverID)
}

func TestSubmitLeaveRequestInvertedRangeWritesNothing(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	_, err := svc.SubmitLeaveRequest(context.Background(), leave.SubmitLeaveRequestRequest{
		EmployeeCode: "EMP001",
		StartDate:    "2024-04-12",
		EndDate:      "2024-04-10",
		LeaveType:    "Annual",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Empty(t, leaveRepo.byCode, "an inverted range must never produce a row")
}

func TestSubmitLeaveRequestUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := svc.SubmitLeaveRequest(context.Background(), leave.SubmitLeaveRequestRequest{
		EmployeeCode: "EMP999",
		StartDate:    "2024-04-10",
		EndDate:      "2024-04-12",
		LeaveType:    "Sick",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveLeaveRequestKeepsRemarks(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	remarks := "family trip"
	created := submit(t, svc, &remarks)

	resp, err := svc.ApproveLeaveRequest(context.Background(), created.RequestCode, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "Approved", resp.Status)
	require.NotNil(t, resp.ApproverID)
	assert.Equal(t, "admin-1", *resp.ApproverID)
	require.NotNil(t, resp.Remarks)
	assert.Equal(t, "family trip", *resp.Remarks, "approval must not touch the submitter's remarks")
}

func TestRejectLeaveRequestReplacesRemarks(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	remarks := "family trip"
	created := submit(t, svc, &remarks)

	resp, err := svc.RejectLeaveRequest(context.Background(), created.RequestCode, "headcount freeze", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "Rejected", resp.Status)
	require.NotNil(t, resp.Remarks)
	assert.Equal(t, "headcount freeze", *resp.Remarks)
}

func TestRejectLeaveRequestRequiresReason(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	created := submit(t, svc, nil)

	_, err := svc.RejectLeaveRequest(context.Background(), created.RequestCode, "  ", "admin-1")

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, leave.StatusPending, leaveRepo.byCode[created.RequestCode].Status)
}

func TestDecisionOnProcessedRequest(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(leaveRepo, newFakeEmployeeRepo(testEmployee()))

	created := submit(t, svc, nil)

	_, err := svc.ApproveLeaveRequest(context.Background(), created.RequestCode, "admin-1")
	require.NoError(t, err)

	_, err = svc.RejectLeaveRequest(context.Background(), created.RequestCode, "changed my mind", "admin-2")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = svc.ApproveLeaveRequest(context.Background(), created.RequestCode, "admin-2")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	// The first decision stands.
	stored := leaveRepo.byCode[created.RequestCode]
	assert.Equal(t, leave.StatusApproved, stored.Status)
	assert.Equal(t, "admin-1", *stored.ApproverID)
}

func TestDecisionOnUnknownRequest(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), newFakeEmployeeRepo(testEmployee()))

	_, err := svc.ApproveLeaveRequest(context.Background(), "LVE999", "admin-1")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
