package service

import (
	"context"
	"time"

	"github.com/Roma7-7-7/outage-notifier/internal/dal"
	"github.com/Roma7-7-7/outage-notifier/internal/providers"
	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/outages.go . FeedProvider,SnapshotStore,Notifier,ScheduleExporter

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type FeedProvider interface {
	Feed(ctx context.Context) (providers.Feed, error)
}

type SnapshotStore interface {
	GetSnapshot(key dal.SnapshotKey) (dal.Snapshot, bool, error)
	PutSnapshot(key dal.SnapshotKey, snapshot dal.Snapshot) error
	DeleteSnapshot(key dal.SnapshotKey) error
}

type Notifier interface {
	// Notify posts an HTML message. An empty imageURL sends text only.
	Notify(ctx context.Context, text, imageURL string) error
}

// ScheduleExporter receives the schedule after a change was detected.
type ScheduleExporter interface {
	Name() string
	Export(ctx context.Context, days []schedule.Day) error
}

type Metrics interface {
	ObserveCheck(outcome string, elapsed time.Duration)
	IncNotification(delivered bool)
	IncExport(exporter string, ok bool)
}

type noopMetrics struct{}

func (noopMetrics) ObserveCheck(string, time.Duration) {}
func (noopMetrics) IncNotification(bool)               {}
func (noopMetrics) IncExport(string, bool)             {}
