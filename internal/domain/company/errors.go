package company

import "errors"

var (
	ErrSettingsNotFound   = errors.New("company settings not configured")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrHolidayExists      = errors.New("holiday already registered for this date")
	ErrInvalidNightWindow = errors.New("night window must be two HH:mm clock times")
)
