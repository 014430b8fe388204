package output

import (
	"fmt"
	"time"
)

// FormatDuration renders a second count as a compact human duration,
// e.g. "42s", "4m 10s", "1h 24m".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds + 0.5)

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatHour renders an hour of day as a clock label, e.g. "14:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// FormatTimestamp renders an event timestamp for list output.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
