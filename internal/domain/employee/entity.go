package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	Phone        string
	DateOfBirth  time.Time
	Address      *string
	Position     string
	DepartmentID *string
	HireDate     time.Time
	BaseSalary   decimal.Decimal
	Status       Status
	Type         Type
	Role         Role

	// Variant fields. Only the variant named by Type carries a meaningful
	// value; the factory zeroes the others.
	AnnualBonus decimal.Decimal // FullTime
	HourlyRate  decimal.Decimal // Contract
	HoursWorked decimal.Decimal // Contract, accrued on clock-out only

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Joined for responses
	DepartmentName *string
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusOnLeave    Status = "OnLeave"
	StatusTerminated Status = "Terminated"
)

// Type is the employee variant discriminator.
type Type string

const (
	TypeRegular  Type = "Regular"
	TypeFullTime Type = "FullTime"
	TypeContract Type = "Contract"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// New builds an employee of the given variant with zeroed type-specific
// fields. An unrecognized discriminator falls back to Regular; rows written
// before the type column was enforced have always been read that way. The
// DTO layer rejects unknown type strings on input, so the fallback only
// applies to data already in the store.
func New(t Type) Employee {
	switch t {
	case TypeRegular, TypeFullTime, TypeContract:
		return Employee{Type: t, Status: StatusActive}
	default:
		return Employee{Type: TypeRegular, Status: StatusActive}
	}
}

// ParseType validates a discriminator string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRegular, TypeFullTime, TypeContract:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusOnLeave, StatusTerminated:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsContract reports whether the employee accrues worked hours on clock-out.
func (e Employee) IsContract() bool {
	return e.Type == TypeContract
}
