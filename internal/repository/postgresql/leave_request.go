package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopleops/hrms-backend-go/internal/domain/leave"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, request_code, employee_id, employee_name, request_date, start_date,
	end_date, leave_type, status, remarks, approver_id, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.RequestCode, &req.EmployeeID, &req.EmployeeName,
		&req.RequestDate, &req.StartDate, &req.EndDate, &req.Type,
		&req.Status, &req.Remarks, &req.ApproverID, &req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, employee_name, request_date, start_date, end_date,
			leave_type, status, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, request_code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.EmployeeName,
		req.RequestDate,
		req.StartDate,
		req.EndDate,
		req.Type,
		req.Status,
		req.Remarks,
	).Scan(&req.ID, &req.RequestCode, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByCode implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByCode(ctx context.Context, code string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE request_code = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by code: %w", err)
	}

	return req, nil
}

// UpdateDecision implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateDecision(ctx context.Context, code string, status leave.Status, approverID string, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	// Rejection replaces remarks with the rejection reason; approval passes
	// remarks through unchanged via COALESCE.
	query := `
		UPDATE leave_requests
		SET status = $1, approver_id = $2, remarks = COALESCE($3, remarks),
			updated_at = NOW()
		WHERE request_code = $4 AND status = 'Pending'
	`

	tag, err := q.Exec(ctx, query, status, approverID, remarks, code)
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either no such request, or it is already terminal. Distinguish so
		// callers report the right condition.
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE request_code = $1)`
		if checkErr := q.QueryRow(ctx, checkQuery, code).Scan(&exists); checkErr != nil {
			return fmt.Errorf("failed to check leave request existence: %w", checkErr)
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY request_date DESC
	`, employeeID)
}

// ListByMonth implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]leave.LeaveRequest, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	// A request touches the month if an endpoint falls inside it or the
	// range spans the month's first day.
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE (start_date >= $1 AND start_date < $2)
		   OR (end_date >= $1 AND end_date < $2)
		   OR (start_date < $1 AND end_date >= $1)
		ORDER BY start_date
	`, first, next)
}

// ListByDate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByDate(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY request_code
	`, date)
}

// ListByEmployeeMonth implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]leave.LeaveRequest, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE employee_id = $1
		  AND ((start_date >= $2 AND start_date < $3)
		    OR (end_date >= $2 AND end_date < $3)
		    OR (start_date < $2 AND end_date >= $2))
		ORDER BY start_date
	`, employeeID, first, next)
}

// ListByEmployeeDate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE employee_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY request_code
	`, employeeID, date)
}

func (r *leaveRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
