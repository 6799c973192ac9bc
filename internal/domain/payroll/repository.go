package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Create inserts a record; the payroll_code (PAY###) is assigned by the
	// store from a sequence.
	Create(ctx context.Context, rec Payroll) (Payroll, error)

	// GetByCode retrieves a record by display code.
	GetByCode(ctx context.Context, code string) (Payroll, error)

	// ListByEmployee retrieves one employee's records, newest period first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)

	// ListByMonth retrieves records whose period starts in the given month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Payroll, error)

	// Update rewrites the mutable money fields and the derived net salary.
	Update(ctx context.Context, rec Payroll) (Payroll, error)

	// MarkMonthPaid flips is_paid on every unpaid record whose period starts
	// in the month and returns the number of rows changed. Running it again
	// for the same month changes zero rows.
	MarkMonthPaid(ctx context.Context, year int, month time.Month) (int64, error)

	// Delete removes a record by display code.
	Delete(ctx context.Context, code string) error
}

type PayrollService interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetByCode(ctx context.Context, code string) (PayrollResponse, error)
	GetByEmployee(ctx context.Context, employeeCode string) ([]PayrollResponse, error)
	GetByMonth(ctx context.Context, year int, month time.Month) ([]PayrollResponse, error)
	Update(ctx context.Context, code string, req UpdatePayrollRequest) (PayrollResponse, error)
	RunPayrollForMonth(ctx context.Context, year int, month time.Month) (RunPayrollResponse, error)
	GetStatistics(ctx context.Context, year int, month time.Month) (StatisticsResponse, error)
	Delete(ctx context.Context, code string) error
}
