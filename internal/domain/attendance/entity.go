package attendance

import (
	"time"
)

type Attendance struct {
	ID             string
	AttendanceCode string
	EmployeeID     string
	EmployeeName   string
	Date           time.Time
	ClockIn        time.Time
	ClockOut       *time.Time // nil until checkout
	Status         Status
	IsAbsentRecord bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "OnLeave"
)

// Engine-wide work-day boundaries. These are not per-employee configuration.
var (
	WorkDayStart = 9 * time.Hour                 // 09:00
	WorkDayEnd   = 17*time.Hour + 30*time.Minute // 17:30
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusLate, StatusAbsent, StatusOnLeave:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// DeriveStatus applies the lateness rule: a Present clock-in strictly after
// the work-day start becomes Late. Absent and OnLeave pass through unchanged.
func DeriveStatus(requested Status, clockIn time.Time) Status {
	if requested != StatusPresent {
		return requested
	}

	sinceMidnight := time.Duration(clockIn.Hour())*time.Hour +
		time.Duration(clockIn.Minute())*time.Minute +
		time.Duration(clockIn.Second())*time.Second +
		time.Duration(clockIn.Nanosecond())

	if sinceMidnight > WorkDayStart {
		return StatusLate
	}
	return StatusPresent
}

// WorkedHours returns the fractional hours between clock-in and clock-out,
// or 0 when the record has no checkout yet.
func (a Attendance) WorkedHours() float64 {
	if a.ClockOut == nil {
		return 0
	}
	return a.ClockOut.Sub(a.ClockIn).Hours()
}
