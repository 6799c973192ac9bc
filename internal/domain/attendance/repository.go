package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a clock-in record; the attendance_code (ATT###) is
	// assigned by the store from a sequence. The unique constraint on
	// (employee_id, date) backs the one-record-per-day rule.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByCode retrieves attendance by display code.
	GetByCode(ctx context.Context, code string) (Attendance, error)

	// HasForDate reports whether the employee already has a record for the
	// given calendar day.
	HasForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// SetClockOut stamps the clock-out time and returns the updated record.
	SetClockOut(ctx context.Context, code string, clockOut time.Time) (Attendance, error)

	// ListByMonth retrieves all records in the given year/month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)

	// ListByDate retrieves all records for the given calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployeeMonth retrieves one employee's records for a month.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// ListByEmployeeDate retrieves one employee's records for a day.
	ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]Attendance, error)

	// CountByStatus groups a month's records by status.
	CountByStatus(ctx context.Context, year int, month time.Month) (map[string]int, error)
}

type AttendanceService interface {
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	UpdateClockOut(ctx context.Context, attendanceCode string) (AttendanceResponse, error)
	GetMonthlyAttendance(ctx context.Context, year int, month time.Month) ([]AttendanceResponse, error)
	GetDailyAttendance(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	GetEmployeeAttendance(ctx context.Context, employeeCode string, year int, month time.Month) ([]AttendanceResponse, error)
	GetEmployeeDailyAttendance(ctx context.Context, employeeCode string, date time.Time) ([]AttendanceResponse, error)
	GetAttendanceSummary(ctx context.Context, year int, month time.Month) (SummaryResponse, error)
}
