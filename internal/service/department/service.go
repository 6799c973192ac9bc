package department

import (
	"context"

	"github.com/peopleops/hrms-backend-go/internal/domain/department"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type DepartmentServiceImpl struct {
	db *database.DB
	department.DepartmentRepository
}

func NewDepartmentService(db *database.DB, departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:                   db,
		DepartmentRepository: departmentRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(created, 0), nil
}

// GetByCode implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByCode(ctx context.Context, code string) (department.DepartmentResponse, error) {
	dep, err := s.DepartmentRepository.GetByCode(ctx, code)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	count, err := s.DepartmentRepository.CountEmployees(ctx, dep.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(dep, count), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dep := range departments {
		count, err := s.DepartmentRepository.CountEmployees(ctx, dep.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toResponse(dep, count))
	}

	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, code string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dep, err := s.DepartmentRepository.GetByCode(ctx, code)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dep.Name = *req.Name
	}
	if req.Description != nil {
		dep.Description = req.Description
	}

	updated, err := s.DepartmentRepository.Update(ctx, dep)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	count, err := s.DepartmentRepository.CountEmployees(ctx, updated.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(updated, count), nil
}

// Delete implements department.DepartmentService. A department with assigned
// employees cannot be removed.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, code string) error {
	dep, err := s.DepartmentRepository.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	count, err := s.DepartmentRepository.CountEmployees(ctx, dep.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return department.ErrDepartmentInUse
	}

	return s.DepartmentRepository.Delete(ctx, code)
}

func toResponse(dep department.Department, employeeCount int) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:             dep.ID,
		DepartmentCode: dep.DepartmentCode,
		Name:           dep.Name,
		Description:    dep.Description,
		EmployeeCount:  employeeCount,
	}
}
