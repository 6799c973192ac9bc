package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peopleops/hrms-backend-go/internal/domain/payroll"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, payroll_code, employee_id, employee_name, period_start, period_end,
	base_salary, allowances, deductions, net_salary, is_paid, created_at,
	updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var rec payroll.Payroll
	err := row.Scan(
		&rec.ID, &rec.PayrollCode, &rec.EmployeeID, &rec.EmployeeName,
		&rec.PeriodStart, &rec.PeriodEnd, &rec.BaseSalary, &rec.Allowances,
		&rec.Deductions, &rec.NetSalary, &rec.IsPaid, &rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			employee_id, employee_name, period_start, period_end, base_salary,
			allowances, deductions, net_salary, is_paid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, payroll_code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.EmployeeName,
		rec.PeriodStart,
		rec.PeriodEnd,
		rec.BaseSalary,
		rec.Allowances,
		rec.Deductions,
		rec.NetSalary,
		rec.IsPaid,
	).Scan(&rec.ID, &rec.PayrollCode, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return rec, nil
}

// GetByCode implements payroll.PayrollRepository.
func (r *payrollRepository) GetByCode(ctx context.Context, code string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE payroll_code = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by code: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	return r.list(ctx, `
		SELECT `+payrollColumns+`
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY period_start DESC
	`, employeeID)
}

// ListByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]payroll.Payroll, error) {
	return r.list(ctx, `
		SELECT `+payrollColumns+`
		FROM payrolls
		WHERE EXTRACT(YEAR FROM period_start) = $1
		  AND EXTRACT(MONTH FROM period_start) = $2
		ORDER BY payroll_code
	`, year, int(month))
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET base_salary = $1, allowances = $2, deductions = $3,
			net_salary = $4, updated_at = NOW()
		WHERE payroll_code = $5
		RETURNING ` + payrollColumns + `
	`

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		rec.BaseSalary, rec.Allowances, rec.Deductions, rec.NetSalary,
		rec.PayrollCode,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	return updated, nil
}

// MarkMonthPaid implements payroll.PayrollRepository.
func (r *payrollRepository) MarkMonthPaid(ctx context.Context, year int, month time.Month) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// The is_paid guard makes a second run for the same month a no-op.
	query := `
		UPDATE payrolls
		SET is_paid = TRUE, updated_at = NOW()
		WHERE is_paid = FALSE
		  AND EXTRACT(YEAR FROM period_start) = $1
		  AND EXTRACT(MONTH FROM period_start) = $2
	`

	tag, err := q.Exec(ctx, query, year, int(month))
	if err != nil {
		return 0, fmt.Errorf("failed to mark month paid: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepository) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE payroll_code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) list(ctx context.Context, query string, args ...interface{}) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return records, nil
}
