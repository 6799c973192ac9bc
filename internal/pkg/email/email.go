package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/peopleops/hrms-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService defines the interface for sending emails
type EmailService interface {
	SendLeaveSubmitted(to, employeeName, leaveType, startDate, endDate string) error
	SendLeaveDecision(to, employeeName, leaveType, status, remarks string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveSubmittedData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
}

// SendLeaveSubmitted notifies the employee that their leave request was received.
func (s *emailServiceImpl) SendLeaveSubmitted(to, employeeName, leaveType, startDate, endDate string) error {
	data := leaveSubmittedData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your leave request has been submitted", body.String())
}

type leaveDecisionData struct {
	EmployeeName string
	LeaveType    string
	Status       string
	Remarks      string
}

// SendLeaveDecision notifies the employee about an approval or rejection.
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, status, remarks string) error {
	data := leaveDecisionData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		Status:       status,
		Remarks:      remarks,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", status), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		// Mail is optional in development setups.
		return nil
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
