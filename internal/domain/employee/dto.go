package employee

import (
	"time"

	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

// Date-of-birth and hire-date bounds carried over from the previous system's
// storage rules: DOB within [1753-01-01, today], hire date at most one year
// out.
var minPlausibleDate = time.Date(1753, time.January, 1, 0, 0, 0, 0, time.UTC)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DateOfBirth  string  `json:"date_of_birth"`
	Address      *string `json:"address,omitempty"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"department_id,omitempty"`
	HireDate     string  `json:"hire_date"`
	BaseSalary   string  `json:"base_salary"`
	EmployeeType string  `json:"employee_type"`
	AnnualBonus  *string `json:"annual_bonus,omitempty"`
	HourlyRate   *string `json:"hourly_rate,omitempty"`
	Password     *string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if dob, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		})
	} else if dob.Before(minPlausibleDate) || dob.After(today()) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be between 1753-01-01 and today",
		})
	}

	if hire, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	} else if hire.Before(minPlausibleDate) || hire.After(today().AddDate(1, 0, 0)) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be between 1753-01-01 and one year from today",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if _, err := ParseType(r.EmployeeType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type",
			Message: "employee_type must be one of Regular, FullTime, Contract",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type UpdateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	Address      *string `json:"address,omitempty"`
	Position     *string `json:"position,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	Status       *string `json:"status,omitempty"`
	AnnualBonus  *string `json:"annual_bonus,omitempty"`
	HourlyRate   *string `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.DateOfBirth != nil {
		if dob, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		} else if dob.Before(minPlausibleDate) || dob.After(today()) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be between 1753-01-01 and today",
			})
		}
	}

	if r.HireDate != nil {
		if hire, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		} else if hire.Before(minPlausibleDate) || hire.After(today().AddDate(1, 0, 0)) {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be between 1753-01-01 and one year from today",
			})
		}
	}

	if r.Status != nil {
		if _, err := ParseStatus(*r.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of Active, Inactive, OnLeave, Terminated",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	DepartmentID *string
	Status       *string
	EmployeeType *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	DateOfBirth    string  `json:"date_of_birth"`
	Address        *string `json:"address,omitempty"`
	Position       string  `json:"position"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	HireDate       string  `json:"hire_date"`
	BaseSalary     string  `json:"base_salary"`
	Status         string  `json:"status"`
	EmployeeType   string  `json:"employee_type"`
	AnnualBonus    *string `json:"annual_bonus,omitempty"`
	HourlyRate     *string `json:"hourly_rate,omitempty"`
	HoursWorked    *string `json:"hours_worked,omitempty"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
