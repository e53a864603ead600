package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
)

func TestDay_Span(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	day := schedule.Day{
		Date:    time.Date(2025, time.November, 20, 0, 0, 0, 0, kyiv),
		Outages: schedule.Parse(map[string]string{"11": "no", "23": "second", "24": "no"}),
	}

	start, end := day.Span(day.Outages[0])
	assert.Equal(t, time.Date(2025, time.November, 20, 10, 0, 0, 0, kyiv), start)
	assert.Equal(t, time.Date(2025, time.November, 20, 11, 0, 0, 0, kyiv), end)

	start, end = day.Span(day.Outages[1])
	assert.Equal(t, time.Date(2025, time.November, 20, 22, 30, 0, 0, kyiv), start)
	assert.Equal(t, time.Date(2025, time.November, 21, 0, 0, 0, 0, kyiv), end)
}

func TestHourStatus(t *testing.T) {
	for _, token := range []string{"yes", "no", "first", "second"} {
		assert.Equal(t, token, schedule.ParseHourStatus(token).String())
	}
	assert.Equal(t, schedule.Available, schedule.ParseHourStatus("unknown"))

	day := schedule.DayStatusesFromMap(map[string]string{"1": "no", "24": "second", "30": "no"})
	assert.Equal(t, schedule.Unavailable, day.Hour(1))
	assert.Equal(t, schedule.SecondHalf, day.Hour(24))
	assert.Equal(t, schedule.Available, day.Hour(2))
	assert.Equal(t, schedule.Available, day.Hour(0))
	assert.Equal(t, schedule.Available, day.Hour(25))
}
