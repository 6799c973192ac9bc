package department

import "context"

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dep Department) (Department, error)
	GetByCode(ctx context.Context, code string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dep Department) (Department, error)
	Delete(ctx context.Context, code string) error

	// CountEmployees counts non-deleted employees assigned to the department.
	CountEmployees(ctx context.Context, departmentID string) (int, error)
}

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetByCode(ctx context.Context, code string) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, code string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, code string) error
}
