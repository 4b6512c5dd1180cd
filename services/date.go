package services

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a seed or import date, either YYYY-MM-DD or RFC 3339
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
}
