package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// ErrIDRequired indicates no task id was provided.
var ErrIDRequired = errors.New("task id required")

// ParseID parses the task id from the first positional argument.
// Ids are positive integers; anything else is a user error.
func ParseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}
	ref := strings.TrimSpace(args[0])
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	id, err := strconv.Atoi(ref)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// ParseDate parses a calendar date. Besides YYYY-MM-DD it accepts "today"
// and "tomorrow" relative to today.
func ParseDate(s string, today civil.Date) (civil.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date: %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// isAllDigits returns true if s is non-empty and contains only ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
