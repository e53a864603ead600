package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"
)

func TestGoogle_owns(t *testing.T) {
	g := &Google{group: "2.2"}

	tests := []struct {
		name  string
		event *gcal.Event
		want  bool
	}{
		{
			name:  "tagged",
			event: &gcal.Event{Id: "a", ExtendedProperties: &gcal.EventExtendedProperties{Private: map[string]string{"source": "outage-notifier", "group": "2.2"}}},
			want:  true,
		},
		{
			name:  "other_group",
			event: &gcal.Event{Id: "b", ExtendedProperties: &gcal.EventExtendedProperties{Private: map[string]string{"source": "outage-notifier", "group": "1.1"}}},
		},
		{
			name:  "foreign",
			event: &gcal.Event{Id: "c", ExtendedProperties: &gcal.EventExtendedProperties{Private: map[string]string{"source": "someone"}}},
		},
		{
			name:  "untagged",
			event: &gcal.Event{Id: "d"},
		},
		{
			name:  "no_id",
			event: &gcal.Event{ExtendedProperties: &gcal.EventExtendedProperties{Private: map[string]string{"source": "outage-notifier", "group": "2.2"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.owns(tt.event))
		})
	}
}

func TestEventTime(t *testing.T) {
	at := time.Date(2025, time.November, 20, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	got := eventTime(at)
	assert.Equal(t, "2025-11-20T10:00:00+02:00", got.DateTime)
	assert.Empty(t, got.TimeZone)

	got = eventTime(time.Date(2025, time.November, 20, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-11-20T08:00:00Z", got.DateTime)
	assert.Empty(t, got.TimeZone)

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	got = eventTime(at.In(kyiv))
	assert.Equal(t, "2025-11-20T10:00:00+02:00", got.DateTime)
	assert.Equal(t, "Europe/Kyiv", got.TimeZone)
}
