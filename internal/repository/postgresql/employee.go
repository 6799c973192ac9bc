package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.name, e.email, e.phone, e.date_of_birth, e.address,
	e.position, e.department_id, e.hire_date, e.base_salary, e.status,
	e.employee_type, e.role, e.annual_bonus, e.hourly_rate, e.hours_worked,
	e.created_at, e.updated_at, e.deleted_at, d.name AS department_name`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email, &emp.Phone,
		&emp.DateOfBirth, &emp.Address, &emp.Position, &emp.DepartmentID,
		&emp.HireDate, &emp.BaseSalary, &emp.Status, &emp.Type, &emp.Role,
		&emp.AnnualBonus, &emp.HourlyRate, &emp.HoursWorked,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt, &emp.DepartmentName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee, passwordHash *string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			name, email, phone, date_of_birth, address, position, department_id,
			hire_date, base_salary, status, employee_type, role, password_hash,
			annual_bonus, hourly_rate, hours_worked
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING id, employee_code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.Phone,
		emp.DateOfBirth,
		emp.Address,
		emp.Position,
		emp.DepartmentID,
		emp.HireDate,
		emp.BaseSalary,
		emp.Status,
		emp.Type,
		emp.Role,
		passwordHash,
		emp.AnnualBonus,
		emp.HourlyRate,
		emp.HoursWorked,
	).Scan(&emp.ID, &emp.EmployeeCode, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.employee_code = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// GetCredentialsByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetCredentialsByCode(ctx context.Context, code string) (employee.Employee, string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_code, e.name, e.email, e.status, e.role,
			   COALESCE(e.password_hash, '')
		FROM employees e
		WHERE e.employee_code = $1 AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	var hash string
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email, &emp.Status,
		&emp.Role, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, "", employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, "", fmt.Errorf("failed to get employee credentials: %w", err)
	}

	return emp, hash, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	conditions = append(conditions, "e.deleted_at IS NULL")

	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.EmployeeType != nil {
		conditions = append(conditions, fmt.Sprintf("e.employee_type = $%d", argPos))
		args = append(args, *filter.EmployeeType)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		%s
		ORDER BY e.employee_code
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $1, email = $2, phone = $3, date_of_birth = $4, address = $5,
			position = $6, department_id = $7, hire_date = $8, base_salary = $9,
			status = $10, annual_bonus = $11, hourly_rate = $12, updated_at = NOW()
		WHERE id = $13 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		emp.Name, emp.Email, emp.Phone, emp.DateOfBirth, emp.Address,
		emp.Position, emp.DepartmentID, emp.HireDate, emp.BaseSalary,
		emp.Status, emp.AnnualBonus, emp.HourlyRate, emp.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// AddContractHours implements employee.EmployeeRepository.
func (r *employeeRepository) AddContractHours(ctx context.Context, employeeID string, hours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET hours_worked = hours_worked + $1, updated_at = NOW()
		WHERE id = $2 AND employee_type = 'Contract' AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, hours, employeeID)
	if err != nil {
		return fmt.Errorf("failed to add contract hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), status = 'Terminated', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
