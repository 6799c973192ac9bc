package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a Pending request; the request_code (LVE###) is
	// assigned by the store from a sequence.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByCode retrieves a request by display code.
	GetByCode(ctx context.Context, code string) (LeaveRequest, error)

	// UpdateDecision writes the terminal status, approver and (for
	// rejections) the replacement remarks.
	UpdateDecision(ctx context.Context, code string, status Status, approverID string, remarks *string) error

	// ListByEmployee retrieves all of one employee's requests.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListByMonth retrieves requests whose [start, end] range touches the
	// month: an endpoint inside it, or spanning its first day.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]LeaveRequest, error)

	// ListByDate retrieves requests whose range covers the day.
	ListByDate(ctx context.Context, date time.Time) ([]LeaveRequest, error)

	// ListByEmployeeMonth is ListByMonth scoped to one employee.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]LeaveRequest, error)

	// ListByEmployeeDate is ListByDate scoped to one employee.
	ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]LeaveRequest, error)
}

type LeaveService interface {
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, requestCode string, approverID string) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, requestCode string, reason string, approverID string) (LeaveRequestResponse, error)
	GetEmployeeLeaves(ctx context.Context, employeeCode string) ([]LeaveRequestResponse, error)
	GetMonthlyLeaves(ctx context.Context, year int, month time.Month) ([]LeaveRequestResponse, error)
	GetDailyLeaves(ctx context.Context, date time.Time) ([]LeaveRequestResponse, error)
	GetEmployeeMonthlyLeaves(ctx context.Context, employeeCode string, year int, month time.Month) ([]LeaveRequestResponse, error)
	GetEmployeeDailyLeaves(ctx context.Context, employeeCode string, date time.Time) ([]LeaveRequestResponse, error)
}
