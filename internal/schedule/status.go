package schedule

import (
	"fmt"
	"strconv"
)

// HoursPerDay is the number of hourly slots in a feed day.
const HoursPerDay = 24

type HourStatus int

const (
	Available HourStatus = iota
	Unavailable
	FirstHalf
	SecondHalf
)

// ParseHourStatus maps a feed token to a status. Unknown tokens are Available.
func ParseHourStatus(token string) HourStatus {
	switch token {
	case "no":
		return Unavailable
	case "first":
		return FirstHalf
	case "second":
		return SecondHalf
	default:
		return Available
	}
}

func (s HourStatus) String() string {
	switch s {
	case Available:
		return "yes"
	case Unavailable:
		return "no"
	case FirstHalf:
		return "first"
	case SecondHalf:
		return "second"
	default:
		return fmt.Sprintf("HourStatus(%d)", int(s))
	}
}

// DayStatuses holds the status of each hour of a day. Hour i (1..24) covers
// (i-1):00-i:00 and is stored at index i-1.
type DayStatuses [HoursPerDay]HourStatus

// DayStatusesFromMap converts the feed representation ("1".."24" -> token).
// Missing and out of range keys stay Available.
func DayStatusesFromMap(hours map[string]string) DayStatuses {
	var res DayStatuses
	for key, token := range hours {
		hour, err := strconv.Atoi(key)
		if err != nil || hour < 1 || hour > HoursPerDay {
			continue
		}
		res[hour-1] = ParseHourStatus(token)
	}
	return res
}

// Hour returns the status of hour 1..24. Anything else is Available.
func (d DayStatuses) Hour(hour int) HourStatus {
	if hour < 1 || hour > HoursPerDay {
		return Available
	}
	return d[hour-1]
}
