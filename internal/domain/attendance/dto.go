package attendance

import (
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeCode string `json:"employee_code"`
	Status       string `json:"status"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Late, Absent, OnLeave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	AttendanceCode string  `json:"attendance_code"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Date           string  `json:"date"`
	ClockInTime    string  `json:"clock_in_time"`
	ClockOutTime   *string `json:"clock_out_time,omitempty"`
	WorkedHours    *string `json:"worked_hours,omitempty"`
	Status         string  `json:"status"`
	IsAbsentRecord bool    `json:"is_absent_record"`
}

// SummaryResponse counts records per status for one month.
type SummaryResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Counts map[string]int `json:"counts"`
}
