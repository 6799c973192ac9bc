package postgresql_test

import (
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hrms-backend-go/internal/domain/leave"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/repository/postgresql"
)

func TestLeaveUpdateDecisionApprove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := postgresql.NewLeaveRequestRepository(&database.DB{})
	ctx := txContext(t, mock)

	// Approval passes nil remarks; COALESCE keeps the submitter's text.
	mock.ExpectExec("UPDATE leave_requests").
		WithArgs(leave.StatusApproved, "admin-1", (*string)(nil), "LVE001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateDecision(ctx, "LVE001", leave.StatusApproved, "admin-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveUpdateDecisionAlreadyProcessed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := postgresql.NewLeaveRequestRepository(&database.DB{})
	ctx := txContext(t, mock)

	reason := "headcount freeze"
	mock.ExpectExec("UPDATE leave_requests").
		WithArgs(leave.StatusRejected, "admin-1", &reason, "LVE001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("LVE001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err = repo.UpdateDecision(ctx, "LVE001", leave.StatusRejected, "admin-1", &reason)

	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveUpdateDecisionNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := postgresql.NewLeaveRequestRepository(&database.DB{})
	ctx := txContext(t, mock)

	mock.ExpectExec("UPDATE leave_requests").
		WithArgs(leave.StatusApproved, "admin-1", (*string)(nil), "LVE999").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("LVE999").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err = repo.UpdateDecision(ctx, "LVE999", leave.StatusApproved, "admin-1", nil)

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
