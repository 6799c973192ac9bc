package leave

import (
	"time"
)

type LeaveRequest struct {
	ID           string
	RequestCode  string
	EmployeeID   string
	EmployeeName string // snapshot at submission time
	RequestDate  time.Time
	StartDate    time.Time
	EndDate      time.Time
	Type         Type
	Status       Status
	Remarks      *string
	ApproverID   *string // set only on approval/rejection
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Type string

const (
	TypeAnnual    Type = "Annual"
	TypeSick      Type = "Sick"
	TypeUnpaid    Type = "Unpaid"
	TypeMaternity Type = "Maternity"
	TypeEmergency Type = "Emergency"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseType validates a leave type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeAnnual, TypeSick, TypeUnpaid, TypeMaternity, TypeEmergency:
		return Type(s), nil
	default:
		return "", ErrInvalidLeaveType
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// OverlapsMonth reports whether the inclusive [start, end] range touches the
// given month: either endpoint falls inside it, or the range started before
// the month and was still open on its first day. A request spanning a month
// boundary therefore shows up in both months.
func OverlapsMonth(start, end time.Time, year int, month time.Month) bool {
	inMonth := func(t time.Time) bool {
		return t.Year() == year && t.Month() == month
	}
	if inMonth(start) || inMonth(end) {
		return true
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, start.Location())
	return start.Before(first) && !end.Before(first)
}

// CoversDate reports whether the day lies within [start, end], inclusive.
func CoversDate(start, end, date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return !day.Before(startOfDay(start)) && !day.After(startOfDay(end))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
