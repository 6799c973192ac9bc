package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID           string
	PayrollCode  string
	EmployeeID   string
	EmployeeName string // snapshot at record creation
	PeriodStart  time.Time
	PeriodEnd    time.Time
	BaseSalary   decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
	IsPaid       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
