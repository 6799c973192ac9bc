package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopleops/hrms-backend-go/internal/domain/leave"
	"github.com/peopleops/hrms-backend-go/internal/handler/http/response"
	"github.com/peopleops/hrms-backend-go/internal/pkg/session"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListMonthly(w http.ResponseWriter, r *http.Request)
	ListDaily(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonthly(w http.ResponseWriter, r *http.Request)
	ListByEmployeeDaily(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Staff may only submit for themselves; admins may submit on behalf of
	// any employee.
	sess, err := session.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Session is missing or invalid")
		return
	}
	if sess.Role != "admin" && req.EmployeeCode != sess.EmployeeCode {
		response.Forbidden(w, "Cannot submit leave for another employee")
		return
	}

	created, err := h.leaveService.SubmitLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Request code is required", nil)
		return
	}

	sess, err := session.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Session is missing or invalid")
		return
	}

	approved, err := h.leaveService.ApproveLeaveRequest(r.Context(), code, sess.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", approved)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Request code is required", nil)
		return
	}

	var req leave.RejectLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess, err := session.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Session is missing or invalid")
		return
	}

	rejected, err := h.leaveService.RejectLeaveRequest(r.Context(), code, req.Reason, sess.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

// ListByEmployee implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	requests, err := h.leaveService.GetEmployeeLeaves(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListMonthly implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.leaveService.GetMonthlyLeaves(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListDaily implements LeaveHandler.
func (h *LeaveHandlerImpl) ListDaily(w http.ResponseWriter, r *http.Request) {
	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.leaveService.GetDailyLeaves(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListByEmployeeMonthly implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByEmployeeMonthly(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.leaveService.GetEmployeeMonthlyLeaves(r.Context(), code, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListByEmployeeDaily implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByEmployeeDaily(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.leaveService.GetEmployeeDailyLeaves(r.Context(), code, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
