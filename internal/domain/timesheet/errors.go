package timesheet

import "errors"

var (
	ErrInvalidPeriod       = errors.New("period must be YYYY-MM")
	ErrInvalidWorkSchedule = errors.New("work schedule must be a comma-separated list of HH:mm-HH:mm intervals")
)
