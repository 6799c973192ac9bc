package leave

import (
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	EmployeeCode string  `json:"employee_code"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveType    string  `json:"leave_type"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be before or equal to end_date",
		})
	}

	if _, err := ParseType(r.LeaveType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Annual, Sick, Unpaid, Maternity, Emergency",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	RequestCode  string  `json:"request_code"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	RequestDate  string  `json:"request_date"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveType    string  `json:"leave_type"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks,omitempty"`
	ApproverID   *string `json:"approver_id,omitempty"`
}
