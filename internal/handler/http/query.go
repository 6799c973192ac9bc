package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// yearMonthFromQuery parses the year/month query pair, defaulting to the
// current month when both are absent.
func yearMonthFromQuery(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		return now.Year(), now.Month(), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1753 {
		return 0, 0, fmt.Errorf("year must be a valid number")
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}

	return year, time.Month(month), nil
}

// dateFromQuery parses the date query param, defaulting to today.
func dateFromQuery(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	return date, nil
}
