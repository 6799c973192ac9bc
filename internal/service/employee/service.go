package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	empType, err := employee.ParseType(req.EmployeeType)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	baseSalary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{
			Field:   "base_salary",
			Message: "base_salary must be a decimal number",
		}}
	}

	emp := employee.New(empType)
	emp.Name = req.Name
	emp.Email = req.Email
	emp.Phone = req.Phone
	emp.Address = req.Address
	emp.Position = req.Position
	emp.DepartmentID = req.DepartmentID
	emp.BaseSalary = baseSalary
	emp.Role = employee.RoleStaff

	emp.DateOfBirth, _ = validator.IsValidDate(req.DateOfBirth)
	emp.HireDate, _ = validator.IsValidDate(req.HireDate)

	// Only the variant's own compensation field is honored; the rest stay
	// zero regardless of what the request carried.
	switch empType {
	case employee.TypeFullTime:
		if req.AnnualBonus != nil {
			bonus, err := decimal.NewFromString(*req.AnnualBonus)
			if err != nil {
				return employee.EmployeeResponse{}, validator.ValidationErrors{{
					Field:   "annual_bonus",
					Message: "annual_bonus must be a decimal number",
				}}
			}
			emp.AnnualBonus = bonus
		}
	case employee.TypeContract:
		if req.HourlyRate != nil {
			rate, err := decimal.NewFromString(*req.HourlyRate)
			if err != nil {
				return employee.EmployeeResponse{}, validator.ValidationErrors{{
					Field:   "hourly_rate",
					Message: "hourly_rate must be a decimal number",
				}}
			}
			emp.HourlyRate = rate
		}
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hashed)
		passwordHash = &hashStr
	}

	created, err := s.EmployeeRepository.Create(ctx, emp, passwordHash)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetByCode implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		emp.DateOfBirth, _ = validator.IsValidDate(*req.DateOfBirth)
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.HireDate != nil {
		emp.HireDate, _ = validator.IsValidDate(*req.HireDate)
	}
	if req.BaseSalary != nil {
		baseSalary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			}}
		}
		emp.BaseSalary = baseSalary
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.AnnualBonus != nil && emp.Type == employee.TypeFullTime {
		bonus, err := decimal.NewFromString(*req.AnnualBonus)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "annual_bonus",
				Message: "annual_bonus must be a decimal number",
			}}
		}
		emp.AnnualBonus = bonus
	}
	if req.HourlyRate != nil && emp.Type == employee.TypeContract {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a decimal number",
			}}
		}
		emp.HourlyRate = rate
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return toResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, code string) error {
	emp, err := s.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	return s.EmployeeRepository.SoftDelete(ctx, emp.ID)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		Name:           emp.Name,
		Email:          emp.Email,
		Phone:          emp.Phone,
		DateOfBirth:    emp.DateOfBirth.Format(time.DateOnly),
		Address:        emp.Address,
		Position:       emp.Position,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		HireDate:       emp.HireDate.Format(time.DateOnly),
		BaseSalary:     emp.BaseSalary.String(),
		Status:         string(emp.Status),
		EmployeeType:   string(emp.Type),
	}

	switch emp.Type {
	case employee.TypeFullTime:
		bonus := emp.AnnualBonus.String()
		resp.AnnualBonus = &bonus
	case employee.TypeContract:
		rate := emp.HourlyRate.String()
		hours := emp.HoursWorked.String()
		resp.HourlyRate = &rate
		resp.HoursWorked = &hours
	}

	return resp
}
