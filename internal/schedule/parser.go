package schedule

// Parse converts a feed hour map ("1".."24" -> "yes"|"no"|"first"|"second")
// into merged outages.
func Parse(hours map[string]string) []Outage {
	if len(hours) == 0 {
		return []Outage{}
	}
	return Merge(RawIntervals(DayStatusesFromMap(hours)))
}

// RawIntervals scans the day left to right and emits one interval per run of
// unavailable hours and one per half-hour status. The result is ordered and
// never overlapping, neighbours may touch.
func RawIntervals(day DayStatuses) []Interval {
	res := make([]Interval, 0)

	i := 1
	for i <= HoursPerDay {
		switch day.Hour(i) {
		case Unavailable:
			start := i - 1
			for i <= HoursPerDay && day.Hour(i) == Unavailable {
				i++
			}
			res = append(res, Interval{Start: At(start, 0), End: At(i-1, 0)})
		case FirstHalf:
			res = append(res, Interval{Start: At(i-1, 0), End: At(i-1, 30)}) //nolint:mnd // half hour
			i++
		case SecondHalf:
			// hour i covers (i-1):00-i:00, so its second half is (i-1):30-i:00
			res = append(res, Interval{Start: At(i-1, 30), End: At(i, 0)}) //nolint:mnd // half hour
			i++
		default:
			i++
		}
	}

	return res
}

// Merge collapses runs of touching intervals. The duration of every merged
// outage is computed over its whole range, not summed from the parts.
func Merge(intervals []Interval) []Outage {
	res := make([]Outage, 0, len(intervals))

	i := 0
	for i < len(intervals) {
		start, end := intervals[i].Start, intervals[i].End

		j := i + 1
		for j < len(intervals) && intervals[j].Start == end {
			end = intervals[j].End
			j++
		}

		merged := Interval{Start: start, End: end}
		res = append(res, Outage{Start: start, End: end, Hours: Duration(merged.Range())})
		i = j
	}

	return res
}

// Intervals strips durations so outages can be merged again.
func Intervals(outages []Outage) []Interval {
	res := make([]Interval, len(outages))
	for i, o := range outages {
		res[i] = Interval{Start: o.Start, End: o.End}
	}
	return res
}
