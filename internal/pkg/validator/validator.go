package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// StripNonDigits removes every non-digit character. Punch-clock exports embed
// PIS/CPF identifiers with padding and formatting noise, so matching is always
// done on the digit sequence alone.
func StripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks the digit count of a CPF (formatting stripped).
func IsValidCPF(cpf string) bool {
	return len(StripNonDigits(cpf)) == 11
}

// IsValidPIS checks the digit count of a PIS (formatting stripped).
func IsValidPIS(pis string) bool {
	return len(StripNonDigits(pis)) == 11
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth checks a "YYYY-MM" period key.
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}

// IsValidClockTime checks an "HH:mm" wall-clock string.
func IsValidClockTime(clock string) bool {
	_, err := time.Parse("15:04", clock)
	return err == nil
}

var scheduleRegex = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}(,\d{2}:\d{2}-\d{2}:\d{2})*$`)

// IsValidWorkSchedule checks a comma-separated interval list such as
// "08:00-12:00,13:00-17:00".
func IsValidWorkSchedule(schedule string) bool {
	if !scheduleRegex.MatchString(schedule) {
		return false
	}
	for _, part := range strings.Split(schedule, ",") {
		bounds := strings.SplitN(part, "-", 2)
		if !IsValidClockTime(bounds[0]) || !IsValidClockTime(bounds[1]) {
			return false
		}
	}
	return true
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
