package testutil

import (
	"time"

	"github.com/Roma7-7-7/outage-notifier/internal/dal"
)

// SnapshotBuilder provides fluent API for building test snapshots
type SnapshotBuilder struct {
	snapshot dal.Snapshot
}

// NewSnapshot creates a new snapshot builder with defaults
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		snapshot: dal.Snapshot{
			Today: dal.DaySchedule{
				Date:      "20.11.2025",
				Timestamp: 1763589600,
				Outages:   []string{"10:00-12:00 (2 год)", "17:30-18:00 (30 хв)"},
			},
			LastCheck:  time.Date(2025, time.November, 20, 16, 10, 0, 0, time.UTC),
			LastUpdate: "2025-11-20T14:05:11.000Z",
		},
	}
}

// WithToday replaces today's schedule
func (b *SnapshotBuilder) WithToday(date string, timestamp int64, outages ...string) *SnapshotBuilder {
	b.snapshot.Today = daySchedule(date, timestamp, outages)
	return b
}

// WithTomorrow sets tomorrow's schedule
func (b *SnapshotBuilder) WithTomorrow(date string, timestamp int64, outages ...string) *SnapshotBuilder {
	s := daySchedule(date, timestamp, outages)
	b.snapshot.Tomorrow = &s
	return b
}

func (b *SnapshotBuilder) WithoutTomorrow() *SnapshotBuilder {
	b.snapshot.Tomorrow = nil
	return b
}

func (b *SnapshotBuilder) WithLastCheck(t time.Time) *SnapshotBuilder {
	b.snapshot.LastCheck = t
	return b
}

func (b *SnapshotBuilder) WithLastUpdate(v string) *SnapshotBuilder {
	b.snapshot.LastUpdate = v
	return b
}

// Build returns the constructed snapshot
func (b *SnapshotBuilder) Build() dal.Snapshot {
	res := b.snapshot
	if res.Tomorrow != nil {
		tomorrow := *res.Tomorrow
		res.Tomorrow = &tomorrow
	}
	return res
}

func daySchedule(date string, timestamp int64, outages []string) dal.DaySchedule {
	if outages == nil {
		outages = []string{}
	}
	return dal.DaySchedule{Date: date, Timestamp: timestamp, Outages: outages}
}
