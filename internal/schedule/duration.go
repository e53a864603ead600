package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerHour = 60

// Duration returns the length in hours of a "HH:MM-HH:MM" range.
// An end hour of 24 counts as exactly 24 regardless of its minutes.
// Malformed ranges yield 0.
func Duration(timeRange string) float64 {
	parts := strings.Split(timeRange, "-")
	if len(parts) != 2 { //nolint:mnd // start and end
		return 0
	}

	startH, startM, ok := parseClock(parts[0])
	if !ok {
		return 0
	}
	endH, endM, ok := parseClock(parts[1])
	if !ok {
		return 0
	}

	start := float64(startH) + float64(startM)/minutesPerHour
	end := float64(endH) + float64(endM)/minutesPerHour
	if endH == HoursPerDay {
		end = HoursPerDay
	}

	return end - start
}

func parseClock(s string) (int, int, bool) {
	hm := strings.Split(s, ":")
	if len(hm) != 2 { //nolint:mnd // hours and minutes
		return 0, 0, false
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// FormatDuration renders an hour count, e.g. "30 хв", "2 год", "1 год 30 хв".
func FormatDuration(hours float64) string {
	switch {
	case hours == 0.5: //nolint:mnd // half an hour
		return "30 хв"
	case hours == 1:
		return "1 год"
	case hours < 1:
		return fmt.Sprintf("%d хв", int(hours*minutesPerHour))
	case hours == float64(int(hours)):
		return fmt.Sprintf("%d год", int(hours))
	default:
		whole := int(hours)
		minutes := int((hours - float64(whole)) * minutesPerHour)
		return fmt.Sprintf("%d год %d хв", whole, minutes)
	}
}
