package payroll

import (
	"context"
	"time"

	"github.com/peopleops/hrms-backend-go/internal/domain/employee"
	"github.com/peopleops/hrms-backend-go/internal/domain/payroll"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func NewPayrollService(db *database.DB, payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                 db,
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)

	rec := payroll.Payroll{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		BaseSalary:   req.BaseSalary,
		Allowances:   req.Allowances,
		Deductions:   req.Deductions,
		NetSalary:    payroll.CalculateNetSalary(req.BaseSalary, req.Allowances, req.Deductions),
	}

	created, err := s.PayrollRepository.Create(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(created), nil
}

// GetByCode implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByCode(ctx context.Context, code string) (payroll.PayrollResponse, error) {
	rec, err := s.PayrollRepository.GetByCode(ctx, code)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(rec), nil
}

// GetByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByEmployee(ctx context.Context, employeeCode string) ([]payroll.PayrollResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	records, err := s.PayrollRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetByMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByMonth(ctx context.Context, year int, month time.Month) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Update implements payroll.PayrollService. Net salary is rederived from the
// updated components; it is never a client-supplied value.
func (s *PayrollServiceImpl) Update(ctx context.Context, code string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.PayrollRepository.GetByCode(ctx, code)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if req.BaseSalary != nil {
		rec.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		rec.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		rec.Deductions = *req.Deductions
	}
	rec.NetSalary = payroll.CalculateNetSalary(rec.BaseSalary, rec.Allowances, rec.Deductions)

	updated, err := s.PayrollRepository.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(updated), nil
}

// RunPayrollForMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayrollForMonth(ctx context.Context, year int, month time.Month) (payroll.RunPayrollResponse, error) {
	rowsPaid, err := s.PayrollRepository.MarkMonthPaid(ctx, year, month)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	return payroll.RunPayrollResponse{
		Year:     year,
		Month:    int(month),
		RowsPaid: rowsPaid,
	}, nil
}

// GetStatistics implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetStatistics(ctx context.Context, year int, month time.Month) (payroll.StatisticsResponse, error) {
	records, err := s.PayrollRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return payroll.StatisticsResponse{}, err
	}

	min, max := payroll.SalaryRange(records)

	return payroll.StatisticsResponse{
		Year:    year,
		Month:   int(month),
		Count:   len(records),
		Total:   payroll.CalculateTotalPayroll(records),
		Average: payroll.CalculateAverageSalary(records),
		Min:     min,
		Max:     max,
	}, nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, code string) error {
	return s.PayrollRepository.Delete(ctx, code)
}

func toResponse(rec payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:           rec.ID,
		PayrollCode:  rec.PayrollCode,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		PeriodStart:  rec.PeriodStart.Format(time.DateOnly),
		PeriodEnd:    rec.PeriodEnd.Format(time.DateOnly),
		BaseSalary:   rec.BaseSalary,
		Allowances:   rec.Allowances,
		Deductions:   rec.Deductions,
		NetSalary:    rec.NetSalary,
		IsPaid:       rec.IsPaid,
	}
}

func toResponses(records []payroll.Payroll) []payroll.PayrollResponse {
	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses
}
