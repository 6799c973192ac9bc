package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/domain/leave"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/pkg/email"
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	emailService email.EmailService
	now          func() time.Time
}

func NewLeaveService(db *database.DB, leaveRequestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, emailService email.EmailService) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		emailService:           emailService,
		now:                    time.Now,
	}
}

// SubmitLeaveRequest implements leave.LeaveService. The date range is
// validated before anything touches the store: an inverted range never
// produces a row.
func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	leaveType, _ := leave.ParseType(req.LeaveType)

	request := leave.LeaveRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		RequestDate:  s.now(),
		StartDate:    startDate,
		EndDate:      endDate,
		Type:         leaveType,
		Status:       leave.StatusPending,
		Remarks:      req.Remarks,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Notification is best effort; a mail failure never fails the submission.
	go func() {
		if err := s.emailService.SendLeaveSubmitted(emp.Email, emp.Name, string(created.Type), req.StartDate, req.EndDate); err != nil {
			fmt.Printf("failed to send leave submitted email for %s: %v\n", created.RequestCode, err)
		}
	}()

	return toResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService. Only Pending requests
// can be approved; a request already in a terminal state is reported as
// already processed.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestCode string, approverID string) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, requestCode, leave.StatusApproved, approverID, nil)
}

// RejectLeaveRequest implements leave.LeaveService. The rejection reason
// replaces the submitter's remarks on the stored request.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, requestCode string, reason string, approverID string) (leave.LeaveRequestResponse, error) {
	req := leave.RejectLeaveRequestRequest{Reason: reason}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return s.decide(ctx, requestCode, leave.StatusRejected, approverID, &reason)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, requestCode string, status leave.Status, approverID string, remarks *string) (leave.LeaveRequestResponse, error) {
	if err := s.LeaveRequestRepository.UpdateDecision(ctx, requestCode, status, approverID, remarks); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.GetByCode(ctx, requestCode)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	go func() {
		emp, err := s.EmployeeRepository.GetByID(context.Background(), updated.EmployeeID)
		if err != nil {
			fmt.Printf("failed to look up employee for leave decision email: %v\n", err)
			return
		}
		var remarksText string
		if updated.Remarks != nil {
			remarksText = *updated.Remarks
		}
		if err := s.emailService.SendLeaveDecision(emp.Email, emp.Name, string(updated.Type), string(updated.Status), remarksText); err != nil {
			fmt.Printf("failed to send leave decision email for %s: %v\n", updated.RequestCode, err)
		}
	}()

	return toResponse(updated), nil
}

// GetEmployeeLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetEmployeeLeaves(ctx context.Context, employeeCode string) ([]leave.LeaveRequestResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	return toResponses(requests), nil
}

// GetMonthlyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMonthlyLeaves(ctx context.Context, year int, month time.Month) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return toResponses(requests), nil
}

// GetDailyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetDailyLeaves(ctx context.Context, date time.Time) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toResponses(requests), nil
}

// GetEmployeeMonthlyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetEmployeeMonthlyLeaves(ctx context.Context, employeeCode string, year int, month time.Month) ([]leave.LeaveRequestResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployeeMonth(ctx, emp.ID, year, month)
	if err != nil {
		return nil, err
	}

	return toResponses(requests), nil
}

// GetEmployeeDailyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetEmployeeDailyLeaves(ctx context.Context, employeeCode string, date time.Time) ([]leave.LeaveRequestResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployeeDate(ctx, emp.ID, date)
	if err != nil {
		return nil, err
	}

	return toResponses(requests), nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:           req.ID,
		RequestCode:  req.RequestCode,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		RequestDate:  req.RequestDate.Format(time.RFC3339),
		StartDate:    req.StartDate.Format(time.DateOnly),
		EndDate:      req.EndDate.Format(time.DateOnly),
		LeaveType:    string(req.Type),
		Status:       string(req.Status),
		Remarks:      req.Remarks,
		ApproverID:   req.ApproverID,
	}
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses
}
