package providers

import (
	"slices"
	"strconv"
	"strings"
)

// Feed is the top-level document of the outage-data-ua region files.
type Feed struct {
	RegionID    string `json:"regionId"`
	LastUpdated string `json:"lastUpdated"`
	Fact        *Fact  `json:"fact"`
}

// Fact holds the actual outage schedule.
type Fact struct {
	// Data is keyed by day timestamp (unix seconds), then group key, then hour ("1".."24").
	Data   map[string]map[string]map[string]string `json:"data"`
	Update string                                   `json:"update"`
	Today  int64                                    `json:"today"`
}

// GroupKey converts a group number like "2.2" to the feed key "GPV2.2".
func GroupKey(group string) string {
	return "GPV" + group
}

// Hours returns the hour map of the group for the day starting at ts.
// Missing and empty maps are reported as not found.
func (f *Fact) Hours(ts int64, group string) (map[string]string, bool) {
	day, ok := f.Data[strconv.FormatInt(ts, 10)]
	if !ok {
		return nil, false
	}
	hours, ok := day[GroupKey(group)]
	if !ok || len(hours) == 0 {
		return nil, false
	}
	return hours, true
}

// Timestamps returns the day timestamps of the feed in ascending numeric order.
// Keys that are not numbers are skipped.
func (f *Fact) Timestamps() []int64 {
	res := make([]int64, 0, len(f.Data))
	for key := range f.Data {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		res = append(res, ts)
	}
	slices.Sort(res)
	return res
}

// NextDay returns the first day after Today. The second return value is false
// when there is no such day or the group has no hours for it.
func (f *Fact) NextDay(group string) (int64, map[string]string, bool) {
	for _, ts := range f.Timestamps() {
		if ts <= f.Today {
			continue
		}
		hours, ok := f.Hours(ts, group)
		if !ok {
			return 0, nil, false
		}
		return ts, hours, true
	}
	return 0, nil, false
}

// ImageURL substitutes the group into an image URL template. "{group}" is
// replaced with the group number using dashes ("2.2" -> "2-2").
func ImageURL(template, group string) string {
	return strings.ReplaceAll(template, "{group}", strings.ReplaceAll(group, ".", "-"))
}
