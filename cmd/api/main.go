package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peopleops/hrms-backend-go/internal/config"
	appHTTP "github.com/peopleops/hrms-backend-go/internal/handler/http"
	"github.com/peopleops/hrms-backend-go/internal/pkg/database"
	"github.com/peopleops/hrms-backend-go/internal/pkg/email"
	"github.com/peopleops/hrms-backend-go/internal/pkg/jwt"
	"github.com/peopleops/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopleops/hrms-backend-go/internal/service/attendance"
	authService "github.com/peopleops/hrms-backend-go/internal/service/auth"
	departmentService "github.com/peopleops/hrms-backend-go/internal/service/department"
	employeeService "github.com/peopleops/hrms-backend-go/internal/service/employee"
	leaveService "github.com/peopleops/hrms-backend-go/internal/service/leave"
	payrollService "github.com/peopleops/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(db, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, emailService)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(departmentSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		masterHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
