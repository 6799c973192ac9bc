package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateAttendance = errors.New("attendance already recorded for today")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAlreadyClockedOut   = errors.New("attendance already has a clock-out time")
	ErrInvalidStatus       = errors.New("unknown attendance status")
)
