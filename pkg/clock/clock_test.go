package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/outage-notifier/pkg/clock"
)

func TestClock(t *testing.T) {
	kyiv := time.FixedZone("EET", 2*60*60)
	c := clock.New(kyiv)

	before := time.Now()
	now := c.Now()
	assert.False(t, now.Before(before))
	assert.Equal(t, kyiv, now.Location())
	assert.Equal(t, kyiv, c.Location())

	assert.Equal(t, time.Local, clock.New(nil).Location())
}

func TestMock(t *testing.T) {
	start := time.Date(2025, time.November, 20, 14, 10, 0, 0, time.UTC)
	m := clock.NewMock(start)

	assert.Equal(t, start, m.Now())
	assert.Equal(t, time.UTC, m.Location())

	m.Advance(15 * time.Minute)
	assert.Equal(t, time.Date(2025, time.November, 20, 14, 25, 0, 0, time.UTC), m.Now())

	kyiv := time.FixedZone("EET", 2*60*60)
	m.Set(time.Date(2025, time.November, 21, 0, 5, 0, 0, kyiv))
	assert.Equal(t, kyiv, m.Location())
}

func TestMidnight(t *testing.T) {
	kyiv := time.FixedZone("EET", 2*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "utc_evening_is_next_local_day",
			in:   time.Date(2025, time.November, 20, 23, 30, 0, 0, time.UTC),
			want: time.Date(2025, time.November, 21, 0, 0, 0, 0, kyiv),
		},
		{
			name: "local_noon",
			in:   time.Date(2025, time.November, 20, 12, 0, 0, 0, kyiv),
			want: time.Date(2025, time.November, 20, 0, 0, 0, 0, kyiv),
		},
		{
			name: "feed_day_timestamp",
			in:   time.Unix(1763589600, 0),
			want: time.Date(2025, time.November, 20, 0, 0, 0, 0, kyiv),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.Midnight(tt.in, kyiv))
		})
	}
}
