package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peopleops/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.attendance_code, a.employee_id, e.name, a.date, a.clock_in,
	a.clock_out, a.status, a.is_absent, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.AttendanceCode, &att.EmployeeID, &att.EmployeeName,
		&att.Date, &att.ClockIn, &att.ClockOut, &att.Status,
		&att.IsAbsentRecord, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, clock_in, status, is_absent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, attendance_code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.Status,
		att.IsAbsentRecord,
	).Scan(&att.ID, &att.AttendanceCode, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		// The unique constraint on (employee_id, date) closes the race the
		// pre-insert existence check leaves open.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByCode implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByCode(ctx context.Context, code string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.attendance_code = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by code: %w", err)
	}

	return att, nil
}

// HasForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance for date: %w", err)
	}

	return exists, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetClockOut(ctx context.Context, code string, clockOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a
		SET clock_out = $1, updated_at = NOW()
		FROM employees e
		WHERE a.attendance_code = $2
		  AND a.clock_out IS NULL
		  AND e.id = a.employee_id
		RETURNING ` + attendanceColumns + `
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, clockOut, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	return att, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE EXTRACT(YEAR FROM a.date) = $1 AND EXTRACT(MONTH FROM a.date) = $2
		ORDER BY a.date, a.attendance_code
	`, year, int(month))
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.attendance_code
	`, date)
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND EXTRACT(YEAR FROM a.date) = $2 AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date
	`, employeeID, year, int(month))
}

// ListByEmployeeDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
		ORDER BY a.attendance_code
	`, employeeID, date)
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
