package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create inserts a new employee; the employee_code is assigned by the
	// store from a sequence.
	Create(ctx context.Context, emp Employee, passwordHash *string) (Employee, error)

	// GetByID retrieves an employee by row id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by display code (EMP###).
	GetByCode(ctx context.Context, code string) (Employee, error)

	// GetCredentialsByCode returns the employee plus the stored password
	// hash, for login.
	GetCredentialsByCode(ctx context.Context, code string) (Employee, string, error)

	// List retrieves employees with filters and pagination.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Update updates an existing employee's editable fields.
	Update(ctx context.Context, emp Employee) error

	// AddContractHours atomically adds worked hours to a Contract
	// employee's cumulative total. It is the only mutation of HoursWorked.
	AddContractHours(ctx context.Context, employeeID string, hours decimal.Decimal) error

	// SoftDelete marks the employee deleted while keeping the row for
	// attendance and payroll history.
	SoftDelete(ctx context.Context, id string) error
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, code string) error
}
