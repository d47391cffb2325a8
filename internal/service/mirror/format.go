package mirror

import "fmt"

// FormatMinutes renders a minute count as "HH:mm".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatSignedMinutes renders a signed minute count as "+HH:mm" or "-HH:mm".
// Zero formats as "+00:00".
func FormatSignedMinutes(minutes int) string {
	prefix := "+"
	if minutes < 0 {
		prefix = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, minutes/60, minutes%60)
}
