package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Roma7-7-7/outage-notifier/internal/dal"
	"github.com/Roma7-7-7/outage-notifier/internal/providers"
	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
	"github.com/Roma7-7-7/outage-notifier/pkg/clock"
)

const (
	dateLayout   = "02.01.2006"
	fetchTimeout = time.Minute
)

// Check outcomes reported to metrics.
const (
	OutcomeError     = "error"
	OutcomeSkipped   = "skipped"
	OutcomeUnchanged = "unchanged"
	OutcomeNotified  = "notified"
)

type OutagesConfig struct {
	ChannelID string
	Group     string
	// ImageURL is attached to every post with a cache buster. Empty disables the photo.
	ImageURL string
}

// CheckResult describes a finished check cycle.
type CheckResult struct {
	Cycle    string
	Outcome  string
	Decision ChangeDecision
	Snapshot dal.Snapshot
}

type Outages struct {
	conf      OutagesConfig
	provider  FeedProvider
	store     SnapshotStore
	notifier  Notifier
	exporters []ScheduleExporter
	metrics   Metrics
	clock     Clock

	log *slog.Logger
	mx  *sync.Mutex
}

func NewOutages(
	conf OutagesConfig,
	provider FeedProvider,
	store SnapshotStore,
	notifier Notifier,
	clock Clock,
	log *slog.Logger,
) *Outages {
	return &Outages{
		conf:     conf,
		provider: provider,
		store:    store,
		notifier: notifier,
		metrics:  noopMetrics{},
		clock:    clock,
		log:      log.With("component", "service").With("service", "outages").With("group", conf.Group),
		mx:       &sync.Mutex{},
	}
}

func (s *Outages) WithExporters(exporters ...ScheduleExporter) *Outages {
	s.exporters = append(s.exporters, exporters...)
	return s
}

func (s *Outages) WithMetrics(m Metrics) *Outages {
	if m != nil {
		s.metrics = m
	}
	return s
}

func (s *Outages) key() dal.SnapshotKey {
	return dal.SnapshotKey{ChannelID: s.conf.ChannelID, Group: s.conf.Group}
}

// Reset forgets the stored snapshot, so the next check is a first run.
func (s *Outages) Reset(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.store.DeleteSnapshot(s.key()); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	s.log.InfoContext(ctx, "Snapshot reset", "channel", s.conf.ChannelID)
	return nil
}

// CheckAndNotify runs one check cycle: fetch the feed, compare it with the
// stored snapshot, post a message when something changed and store the new
// snapshot. Only fetch failures are returned. Missing data skips the cycle
// without touching the snapshot. Storage, delivery and export failures are
// logged and the cycle goes on.
func (s *Outages) CheckAndNotify(ctx context.Context, force bool) (CheckResult, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	started := time.Now()
	res := CheckResult{Cycle: uuid.NewString()}
	log := s.log.With("cycle", res.Cycle)
	defer func() {
		s.metrics.ObserveCheck(res.Outcome, time.Since(started))
	}()

	log.InfoContext(ctx, "checking for updates", "force", force)

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	feed, err := s.provider.Feed(fetchCtx)
	if err != nil {
		if errors.Is(err, providers.ErrNoScheduleAvailable) {
			log.WarnContext(ctx, "no valid data received")
			res.Outcome = OutcomeSkipped
			return res, nil
		}
		res.Outcome = OutcomeError
		return res, fmt.Errorf("fetch feed: %w", err)
	}
	if feed.Fact == nil {
		log.WarnContext(ctx, "no valid data received")
		res.Outcome = OutcomeSkipped
		return res, nil
	}

	prev, hasPrev, err := s.store.GetSnapshot(s.key())
	if err != nil {
		log.ErrorContext(ctx, "failed to load snapshot, treating as absent", "error", err)
		prev, hasPrev = dal.Snapshot{}, false
	}

	todayHours, ok := feed.Fact.Hours(feed.Fact.Today, s.conf.Group)
	if !ok {
		log.WarnContext(ctx, "no data found for group", "group_key", providers.GroupKey(s.conf.Group))
		res.Outcome = OutcomeSkipped
		return res, nil
	}

	loc := s.clock.Location()
	days := []schedule.Day{newDay(feed.Fact.Today, todayHours, loc)}
	current := dal.Snapshot{
		Today:      toDaySchedule(feed.Fact.Today, days[0], loc),
		LastCheck:  s.clock.Now(),
		LastUpdate: feed.LastUpdated,
	}
	if ts, hours, ok := feed.Fact.NextDay(s.conf.Group); ok {
		tomorrow := newDay(ts, hours, loc)
		days = append(days, tomorrow)
		ds := toDaySchedule(ts, tomorrow, loc)
		current.Tomorrow = &ds
	}
	res.Snapshot = current

	res.Decision = DetectChanges(prev, hasPrev, current, force)
	if res.Decision.ShouldNotify {
		log.InfoContext(ctx, "changes detected", "reasons", res.Decision.Reasons, "first_run", res.Decision.IsFirstRun)
		s.notify(ctx, log, current, feed.Fact.Update, res.Decision)
		s.export(ctx, log, days)
		res.Outcome = OutcomeNotified
	} else {
		log.InfoContext(ctx, "no changes detected")
		res.Outcome = OutcomeUnchanged
	}

	if err = s.store.PutSnapshot(s.key(), current); err != nil {
		log.ErrorContext(ctx, "failed to save snapshot", "error", err)
	} else {
		log.DebugContext(ctx, "snapshot saved")
	}

	return res, nil
}

func (s *Outages) notify(ctx context.Context, log *slog.Logger, current dal.Snapshot, updatedAt string, decision ChangeDecision) {
	data := MessageData{
		Group:     s.conf.Group,
		IsUpdate:  !decision.IsFirstRun,
		UpdatedAt: updatedAt,
		Today:     DayMessage{Date: current.Today.Date, Outages: current.Today.Outages},
	}
	if current.Tomorrow != nil {
		data.Tomorrow = &DayMessage{Date: current.Tomorrow.Date, Outages: current.Tomorrow.Outages}
	}

	text, err := RenderMessage(data)
	if err != nil {
		log.ErrorContext(ctx, "failed to render message", "error", err)
		s.metrics.IncNotification(false)
		return
	}

	imageURL := s.imageURL()
	log.InfoContext(ctx, "sending message", "image_url", imageURL)
	if err = s.notifier.Notify(ctx, text, imageURL); err != nil {
		log.ErrorContext(ctx, "failed to send message", "error", err)
		s.metrics.IncNotification(false)
		return
	}
	log.InfoContext(ctx, "message sent successfully")
	s.metrics.IncNotification(true)
}

func (s *Outages) export(ctx context.Context, log *slog.Logger, days []schedule.Day) {
	for _, e := range s.exporters {
		if err := e.Export(ctx, days); err != nil {
			log.ErrorContext(ctx, "failed to export schedule", "exporter", e.Name(), "error", err)
			s.metrics.IncExport(e.Name(), false)
			continue
		}
		s.metrics.IncExport(e.Name(), true)
	}
}

// imageURL appends a timestamp so Telegram does not serve a cached picture.
func (s *Outages) imageURL() string {
	if s.conf.ImageURL == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(s.conf.ImageURL, "?") {
		sep = "&"
	}
	return s.conf.ImageURL + sep + "t=" + strconv.FormatInt(s.clock.Now().Unix(), 10)
}

func newDay(ts int64, hours map[string]string, loc *time.Location) schedule.Day {
	return schedule.Day{
		Date:    clock.Midnight(time.Unix(ts, 0), loc),
		Outages: schedule.Parse(hours),
	}
}

func toDaySchedule(ts int64, day schedule.Day, loc *time.Location) dal.DaySchedule {
	return dal.DaySchedule{
		Date:      time.Unix(ts, 0).In(loc).Format(dateLayout),
		Timestamp: ts,
		Outages:   schedule.Strings(day.Outages),
	}
}
