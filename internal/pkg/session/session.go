package session

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Session identifies the employee behind the current request. Handlers build
// it once from the verified JWT claims and pass it explicitly to services
// that need the caller's identity; nothing holds a process-wide current user.
type Session struct {
	EmployeeID   string
	EmployeeCode string
	Role         string
}

// FromContext extracts the session from the request's verified JWT claims.
func FromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Session{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	employeeCode, ok := claims["employee_code"].(string)
	if !ok || employeeCode == "" {
		return Session{}, fmt.Errorf("employee_code claim is missing or invalid")
	}

	role, _ := claims["role"].(string)

	return Session{
		EmployeeID:   employeeID,
		EmployeeCode: employeeCode,
		Role:         role,
	}, nil
}
