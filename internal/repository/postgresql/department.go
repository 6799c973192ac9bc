package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peopleops/hrms-backend-go/internal/domain/department"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dep department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, department_code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dep.Name, dep.Description).
		Scan(&dep.ID, &dep.DepartmentCode, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dep, nil
}

// GetByCode implements department.DepartmentRepository.
func (r *departmentRepository) GetByCode(ctx context.Context, code string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_code, name, description, created_at, updated_at
		FROM departments
		WHERE department_code = $1
	`

	var dep department.Department
	err := q.QueryRow(ctx, query, code).Scan(
		&dep.ID, &dep.DepartmentCode, &dep.Name, &dep.Description,
		&dep.CreatedAt, &dep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by code: %w", err)
	}

	return dep, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_code, name, description, created_at, updated_at
		FROM departments
		ORDER BY department_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dep department.Department
		if err := rows.Scan(
			&dep.ID, &dep.DepartmentCode, &dep.Name, &dep.Description,
			&dep.CreatedAt, &dep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, dep department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, description = $2, updated_at = NOW()
		WHERE department_code = $3
		RETURNING id, department_code, name, description, created_at, updated_at
	`

	var updated department.Department
	err := q.QueryRow(ctx, query, dep.Name, dep.Description, dep.DepartmentCode).Scan(
		&updated.ID, &updated.DepartmentCode, &updated.Name,
		&updated.Description, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE department_code = $1`, code)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// CountEmployees implements department.DepartmentRepository.
func (r *departmentRepository) CountEmployees(ctx context.Context, departmentID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM employees
		WHERE department_id = $1 AND deleted_at IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, departmentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count department employees: %w", err)
	}

	return count, nil
}
