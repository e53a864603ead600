package schedule_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		hours map[string]string
		want  []string
	}{
		{
			name:  "nil_map",
			hours: nil,
			want:  []string{},
		},
		{
			name:  "empty_map",
			hours: map[string]string{},
			want:  []string{},
		},
		{
			name:  "all_available",
			hours: allHours("yes"),
			want:  []string{},
		},
		{
			name:  "unknown_tokens_are_available",
			hours: map[string]string{"3": "maybe", "4": "", "5": "NO"},
			want:  []string{},
		},
		{
			name:  "single_hour",
			hours: map[string]string{"11": "no"},
			want:  []string{"10:00-11:00 (1 год)"},
		},
		{
			name:  "first_half",
			hours: map[string]string{"10": "first"},
			want:  []string{"09:00-09:30 (30 хв)"},
		},
		{
			name:  "second_half",
			hours: map[string]string{"18": "second"},
			want:  []string{"17:30-18:00 (30 хв)"},
		},
		{
			name:  "run_and_half_hour",
			hours: map[string]string{"11": "no", "12": "no", "18": "second"},
			want:  []string{"10:00-12:00 (2 год)", "17:30-18:00 (30 хв)"},
		},
		{
			name:  "first_then_no_does_not_touch",
			hours: map[string]string{"17": "first", "18": "no"},
			want:  []string{"16:00-16:30 (30 хв)", "17:00-18:00 (1 год)"},
		},
		{
			name:  "second_then_no_merges",
			hours: map[string]string{"17": "second", "18": "no", "19": "no", "20": "no"},
			want:  []string{"16:30-20:00 (3 год 30 хв)"},
		},
		{
			name:  "second_then_first_merges",
			hours: map[string]string{"11": "second", "12": "first"},
			want:  []string{"10:30-11:30 (1 год)"},
		},
		{
			name:  "no_then_first_merges",
			hours: map[string]string{"5": "no", "6": "first"},
			want:  []string{"04:00-05:30 (1 год 30 хв)"},
		},
		{
			name:  "run_reaching_midnight",
			hours: map[string]string{"22": "no", "23": "no", "24": "no"},
			want:  []string{"21:00-24:00 (3 год)"},
		},
		{
			name:  "second_half_of_last_hour",
			hours: map[string]string{"24": "second"},
			want:  []string{"23:30-24:00 (30 хв)"},
		},
		{
			name:  "first_half_of_first_hour",
			hours: map[string]string{"1": "first"},
			want:  []string{"00:00-00:30 (30 хв)"},
		},
		{
			name:  "whole_day",
			hours: allHours("no"),
			want:  []string{"00:00-24:00 (24 год)"},
		},
		{
			name:  "out_of_range_keys_ignored",
			hours: map[string]string{"0": "no", "25": "no", "x": "no", "2": "no"},
			want:  []string{"01:00-02:00 (1 год)"},
		},
		{
			name: "several_runs",
			hours: map[string]string{
				"1": "no", "2": "no", "3": "first",
				"8": "first", "9": "yes",
				"15": "no", "16": "no", "17": "no", "18": "no",
			},
			want: []string{
				"00:00-02:30 (2 год 30 хв)",
				"07:00-07:30 (30 хв)",
				"14:00-18:00 (4 год)",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Strings(schedule.Parse(tt.hours)))
		})
	}
}

func TestRawIntervals(t *testing.T) {
	day := schedule.DayStatusesFromMap(map[string]string{"17": "first", "18": "no", "20": "second", "21": "no"})

	got := schedule.RawIntervals(day)
	assert.Equal(t, []schedule.Interval{
		{Start: schedule.At(16, 0), End: schedule.At(16, 30)},
		{Start: schedule.At(17, 0), End: schedule.At(18, 0)},
		{Start: schedule.At(19, 30), End: schedule.At(20, 0)},
		{Start: schedule.At(20, 0), End: schedule.At(21, 0)},
	}, got)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].End, got[i].Start, "intervals must not overlap")
	}
}

func TestRawIntervals_EmptyDay(t *testing.T) {
	var day schedule.DayStatuses
	assert.Empty(t, schedule.RawIntervals(day))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		intervals []schedule.Interval
		want      []string
	}{
		{
			name:      "empty",
			intervals: nil,
			want:      []string{},
		},
		{
			name: "touching_chain",
			intervals: []schedule.Interval{
				{Start: schedule.At(17, 30), End: schedule.At(18, 0)},
				{Start: schedule.At(18, 0), End: schedule.At(21, 0)},
				{Start: schedule.At(21, 0), End: schedule.At(21, 30)},
			},
			want: []string{"17:30-21:30 (4 год)"},
		},
		{
			name: "gap_breaks_chain",
			intervals: []schedule.Interval{
				{Start: schedule.At(8, 0), End: schedule.At(9, 0)},
				{Start: schedule.At(9, 30), End: schedule.At(10, 0)},
			},
			want: []string{"08:00-09:00 (1 год)", "09:30-10:00 (30 хв)"},
		},
		{
			name: "duration_recomputed_over_midnight_range",
			intervals: []schedule.Interval{
				{Start: schedule.At(22, 0), End: schedule.At(23, 30)},
				{Start: schedule.At(23, 30), End: schedule.EndOfDay},
			},
			want: []string{"22:00-24:00 (2 год)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Strings(schedule.Merge(tt.intervals)))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	inputs := []map[string]string{
		{"11": "no", "12": "no", "18": "second"},
		{"17": "second", "18": "no", "19": "first"},
		{"1": "first", "2": "second", "3": "no", "24": "no"},
		allHours("no"),
	}
	for _, hours := range inputs {
		once := schedule.Parse(hours)
		twice := schedule.Merge(schedule.Intervals(once))
		assert.Equal(t, once, twice)

		for i := 1; i < len(once); i++ {
			assert.Less(t, once[i-1].End, once[i].Start, "merged outages must not touch")
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "00:00", schedule.At(0, 0).String())
	assert.Equal(t, "09:30", schedule.At(9, 30).String())
	assert.Equal(t, "24:00", schedule.EndOfDay.String())
}

func allHours(token string) map[string]string {
	res := make(map[string]string, schedule.HoursPerDay)
	for i := 1; i <= schedule.HoursPerDay; i++ {
		res[strconv.Itoa(i)] = token
	}
	return res
}
