package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peopleops/hrms-backend-go/internal/config"
	"github.com/peopleops/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleops/hrms-backend-go/internal/handler/http/response"
	"github.com/peopleops/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{code}", employeeHandler.Get)
				r.Get("/{code}/attendances", attendanceHandler.ListByEmployee)
				r.Get("/{code}/attendances/daily", attendanceHandler.ListByEmployeeDaily)
				r.Get("/{code}/leaves", leaveHandler.ListByEmployee)
				r.Get("/{code}/leaves/monthly", leaveHandler.ListByEmployeeMonthly)
				r.Get("/{code}/leaves/daily", leaveHandler.ListByEmployeeDaily)
				r.Get("/{code}/payrolls", payrollHandler.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{code}", employeeHandler.Update)
					r.Delete("/{code}", employeeHandler.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", attendanceHandler.Record)
				r.Put("/{code}/clock-out", attendanceHandler.ClockOut)
				r.Get("/", attendanceHandler.ListMonthly)
				r.Get("/daily", attendanceHandler.ListDaily)
				r.Get("/summary", attendanceHandler.Summary)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.ListMonthly)
				r.Get("/daily", leaveHandler.ListDaily)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{code}/approve", leaveHandler.Approve)
					r.Put("/{code}/reject", leaveHandler.Reject)
				})
			})

			// Admin only
			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", payrollHandler.Create)
				r.Get("/", payrollHandler.ListMonthly)
				r.Get("/statistics", payrollHandler.Statistics)
				r.Post("/run", payrollHandler.RunForMonth)
				r.Get("/{code}", payrollHandler.Get)
				r.Put("/{code}", payrollHandler.Update)
				r.Delete("/{code}", payrollHandler.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{code}", masterHandler.GetDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{code}", masterHandler.UpdateDepartment)
					r.Delete("/{code}", masterHandler.DeleteDepartment)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
