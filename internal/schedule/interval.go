package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a number of minutes since midnight in [0, 1440].
// 1440 is the midnight that ends the day and prints as "24:00".
type TimeOfDay int

// EndOfDay is the "24:00" boundary.
const EndOfDay = TimeOfDay(HoursPerDay * minutesPerHour)

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*minutesPerHour + minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/minutesPerHour, int(t)%minutesPerHour)
}

// Interval is a single half-hour or hour aligned outage span as read from the feed.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Range renders the interval as "HH:MM-HH:MM".
func (i Interval) Range() string {
	return i.Start.String() + "-" + i.End.String()
}

func (i Interval) String() string {
	return formatEntry(i.Range())
}

// Outage is a maximal run of touching intervals.
type Outage struct {
	Start TimeOfDay
	End   TimeOfDay
	Hours float64
}

func (o Outage) Range() string {
	return o.Start.String() + "-" + o.End.String()
}

// String renders the outage as "HH:MM-HH:MM (<duration>)".
func (o Outage) String() string {
	return o.Range() + " (" + FormatDuration(o.Hours) + ")"
}

func formatEntry(timeRange string) string {
	return timeRange + " (" + FormatDuration(Duration(timeRange)) + ")"
}

// Strings renders every outage with String.
func Strings(outages []Outage) []string {
	res := make([]string, len(outages))
	for i, o := range outages {
		res[i] = o.String()
	}
	return res
}

// Day binds a list of outages to a calendar date.
type Day struct {
	// Date is the local midnight the outages are relative to.
	Date    time.Time
	Outages []Outage
}

// Span returns the absolute start and end of an outage of this day.
// An end of 24:00 is the next day's midnight.
func (d Day) Span(o Outage) (time.Time, time.Time) {
	return d.Date.Add(time.Duration(o.Start) * time.Minute), d.Date.Add(time.Duration(o.End) * time.Minute)
}
