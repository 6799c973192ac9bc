package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/peopleops/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now    func() time.Time
	withTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
		withTx:               postgresql.WithTransaction,
	}
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	exists, err := s.AttendanceRepository.HasForDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
	}

	requested, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.DeriveStatus(requested, now)

	att := attendance.Attendance{
		EmployeeID:     emp.ID,
		Date:           today,
		ClockIn:        now,
		Status:         status,
		IsAbsentRecord: status == attendance.StatusAbsent,
	}

	// The unique constraint catches the race between the existence check and
	// this insert; the repository maps it to ErrDuplicateAttendance.
	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.EmployeeName = emp.Name

	return toResponse(created), nil
}

// UpdateClockOut implements attendance.AttendanceService. For Contract
// employees the clock-out stamp and the hours accrual commit atomically:
// either both land or neither does.
func (s *AttendanceServiceImpl) UpdateClockOut(ctx context.Context, attendanceCode string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByCode(ctx, attendanceCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, att.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()

	var updated attendance.Attendance
	err = s.withTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.AttendanceRepository.SetClockOut(txCtx, attendanceCode, now)
		if err != nil {
			return err
		}

		if emp.IsContract() {
			hours := decimal.NewFromFloat(updated.WorkedHours())
			if err := s.EmployeeRepository.AddContractHours(txCtx, emp.ID, hours); err != nil {
				return fmt.Errorf("failed to accrue contract hours: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// GetMonthlyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, year int, month time.Month) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetDailyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyAttendance(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeCode string, year int, month time.Month) ([]attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, emp.ID, year, month)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetEmployeeDailyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeDailyAttendance(ctx context.Context, employeeCode string, date time.Time) ([]attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeDate(ctx, emp.ID, date)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetAttendanceSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceSummary(ctx context.Context, year int, month time.Month) (attendance.SummaryResponse, error) {
	counts, err := s.AttendanceRepository.CountByStatus(ctx, year, month)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		Year:   year,
		Month:  int(month),
		Counts: counts,
	}, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             att.ID,
		AttendanceCode: att.AttendanceCode,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   att.EmployeeName,
		Date:           att.Date.Format(time.DateOnly),
		ClockInTime:    att.ClockIn.Format(time.RFC3339),
		Status:         string(att.Status),
		IsAbsentRecord: att.IsAbsentRecord,
	}

	if att.ClockOut != nil {
		clockOut := att.ClockOut.Format(time.RFC3339)
		worked := fmt.Sprintf("%.2f", att.WorkedHours())
		resp.ClockOutTime = &clockOut
		resp.WorkedHours = &worked
	}

	return resp
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}
	return responses
}
