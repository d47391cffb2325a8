package mirror

import (
	"strings"

	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// parseClock converts "HH:mm" to minutes since midnight.
func parseClock(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, false
	}
	hour, minute := 0, 0
	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			return 0, false
		}
		hour = hour*10 + int(r-'0')
	}
	for _, r := range parts[1] {
		if r < '0' || r > '9' {
			return 0, false
		}
		minute = minute*10 + int(r-'0')
	}
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// ExpectedMinutes sums the durations of a work schedule string such as
// "08:00-12:00,13:00-17:00" (480 minutes).
func ExpectedMinutes(schedule string) (int, error) {
	if strings.TrimSpace(schedule) == "" {
		return 0, timesheet.ErrInvalidWorkSchedule
	}

	total := 0
	for _, part := range strings.Split(schedule, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return 0, timesheet.ErrInvalidWorkSchedule
		}
		start, okStart := parseClock(bounds[0])
		end, okEnd := parseClock(bounds[1])
		if !okStart || !okEnd || end < start {
			return 0, timesheet.ErrInvalidWorkSchedule
		}
		total += end - start
	}
	return total, nil
}
