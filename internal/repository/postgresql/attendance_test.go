package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/repository/postgresql"
)

// txContext routes repository queries through a pgxmock transaction, the same
// way the services hand a transaction to the repositories.
func txContext(t *testing.T, mock pgxmock.PgxPoolIface) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	return context.WithValue(context.Background(), "tx", tx)
}

func newMockRepo(t *testing.T) (attendance.AttendanceRepository, pgxmock.PgxPoolIface, context.Context) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := postgresql.NewAttendanceRepository(&database.DB{})
	return repo, mock, txContext(t, mock)
}

func TestAttendanceCreate(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	now := time.Date(2024, time.March, 11, 8, 45, 0, 0, time.UTC)
	date := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO attendances").
		WithArgs("emp-1", date, now, attendance.StatusPresent, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "attendance_code", "created_at", "updated_at"}).
			AddRow("row-1", "ATT001", now, now))

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		ClockIn:    now,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	assert.Equal(t, "ATT001", created.AttendanceCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceCreateUniqueViolation(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	now := time.Date(2024, time.March, 11, 8, 45, 0, 0, time.UTC)
	date := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	// The (employee_id, date) unique constraint fires when two clock-ins for
	// the same day race past the existence check.
	mock.ExpectQuery("INSERT INTO attendances").
		WithArgs("emp-1", date, now, attendance.StatusPresent, false).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendances_employee_date"})

	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		ClockIn:    now,
		Status:     attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceGetByCodeNotFound(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM attendances").
		WithArgs("ATT999").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByCode(ctx, "ATT999")

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceSetClockOutAlreadyStamped(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	clockOut := time.Date(2024, time.March, 11, 17, 30, 0, 0, time.UTC)

	// The clock_out IS NULL guard makes a second stamp match zero rows.
	mock.ExpectQuery("UPDATE attendances").
		WithArgs(clockOut, "ATT001").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.SetClockOut(ctx, "ATT001", clockOut)

	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceHasForDate(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	date := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("emp-1", date).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasForDate(ctx, "emp-1", date)
	require.NoError(t, err)

	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
