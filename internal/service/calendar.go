package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Roma7-7-7/outage-notifier/internal/calendar"
	"github.com/Roma7-7-7/outage-notifier/internal/dal"
	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
	"github.com/Roma7-7-7/outage-notifier/pkg/clock"
)

//go:generate mockgen -package mocks -destination mocks/calendar.go . Calendar,ExportStateStore

const (
	colorIDOff = "11" // Tomato, red
	summaryOff = "Power off"

	calendarExporterName = "google_calendar"
)

type CalendarConfig struct {
	CalendarID string
	Group      string
}

type Calendar interface {
	ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params calendar.EventParams) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type ExportStateStore interface {
	GetExportState(sink string) (dal.ExportState, bool, error)
	PutExportState(sink, fingerprint string) error
}

// CalendarExporter mirrors outages into Google Calendar by deleting our
// events of the exported days and creating them again.
type CalendarExporter struct {
	calendar Calendar
	store    ExportStateStore
	clock    Clock
	conf     CalendarConfig

	mx  sync.Mutex
	log *slog.Logger
}

func NewCalendarExporter(conf CalendarConfig, calendar Calendar, store ExportStateStore, clock Clock, log *slog.Logger) *CalendarExporter {
	return &CalendarExporter{
		calendar: calendar,
		store:    store,
		clock:    clock,
		conf:     conf,
		log:      log.With("component", "calendar_sync"),
	}
}

func (s *CalendarExporter) Name() string {
	return calendarExporterName
}

// stateKey scopes the stored fingerprint to the target calendar and group.
func (s *CalendarExporter) stateKey() string {
	return calendarExporterName + "/" + s.conf.CalendarID + "/" + s.conf.Group
}

// Export replaces our events in [first day 00:00, last day 23:59:59] with one
// event per outage. Nothing is done when the days did not change since the
// last successful export.
func (s *CalendarExporter) Export(ctx context.Context, days []schedule.Day) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if len(days) == 0 {
		return nil
	}

	fingerprint := daysFingerprint(days)
	state, found, err := s.store.GetExportState(s.stateKey())
	if err != nil {
		s.log.WarnContext(ctx, "Failed to get export state, syncing anyway", "error", err)
	}
	if found && state.Fingerprint == fingerprint {
		s.log.DebugContext(ctx, "Skipping calendar sync: schedule not changed", "exported_at", state.ExportedAt)
		return nil
	}

	timeMin := days[0].Date
	timeMax := days[len(days)-1].Date.AddDate(0, 0, 1).Add(-time.Second)
	s.log.InfoContext(ctx, "Starting calendar sync", "timeMin", timeMin.Format(time.RFC3339), "timeMax", timeMax.Format(time.RFC3339))

	ids, err := s.cleanupEvents(ctx, timeMin, timeMax)
	if err != nil {
		return err
	}
	s.log.DebugContext(ctx, "Deleted our events", "count", len(ids))

	toCreate := buildEvents(days, s.conf.Group)
	if err = s.createEvents(ctx, toCreate); err != nil {
		return err
	}

	if err = s.store.PutExportState(s.stateKey(), fingerprint); err != nil {
		return fmt.Errorf("save export state: %w", err)
	}

	s.log.InfoContext(ctx, "Calendar sync completed", "deleted", len(ids), "created", len(toCreate))
	return nil
}

func (s *CalendarExporter) cleanupEvents(ctx context.Context, timeMin time.Time, timeMax time.Time) ([]string, error) {
	ids, err := s.calendar.ListOurEvents(ctx, s.conf.CalendarID, timeMin, timeMax)
	if err != nil {
		return nil, fmt.Errorf("calendar sync failed: list: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, s.conf.CalendarID, id); err != nil {
			return nil, fmt.Errorf("calendar sync failed: delete %s: %w", id, err)
		}
	}
	return ids, nil
}

func (s *CalendarExporter) createEvents(ctx context.Context, toCreate []eventPayload) error {
	for _, ev := range toCreate {
		_, err := s.calendar.InsertEvent(ctx, s.conf.CalendarID, summaryOff, ev.start, ev.end, calendar.EventParams{
			ColorID:     colorIDOff,
			Description: ev.description,
		})
		if err != nil {
			return fmt.Errorf("calendar sync failed: insert: %w", err)
		}
	}
	return nil
}

// CleanupStaleEvents deletes our events in the past lookbackDays (not including today).
// Window: [today - lookbackDays at 00:00, yesterday at 23:59:59].
func (s *CalendarExporter) CleanupStaleEvents(ctx context.Context, lookbackDays int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	todayStart := clock.Midnight(s.clock.Now(), s.clock.Location())
	yesterdayEnd := todayStart.Add(-time.Second)
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)

	s.log.InfoContext(ctx, "Starting calendar stale cleanup", "timeMin", timeMin.Format(time.RFC3339), "timeMax", yesterdayEnd.Format(time.RFC3339))

	ids, err := s.calendar.ListOurEvents(ctx, s.conf.CalendarID, timeMin, yesterdayEnd)
	if err != nil {
		return fmt.Errorf("calendar cleanup failed: list: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, s.conf.CalendarID, id); err != nil {
			return fmt.Errorf("calendar cleanup failed: delete %s: %w", id, err)
		}
	}
	s.log.InfoContext(ctx, "Calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

type eventPayload struct {
	start       time.Time
	end         time.Time
	description string
}

func buildEvents(days []schedule.Day, group string) []eventPayload {
	var out []eventPayload
	for _, day := range days {
		for _, o := range day.Outages {
			start, end := day.Span(o)
			out = append(out, eventPayload{
				start:       start,
				end:         end,
				description: fmt.Sprintf("Черга %s, %s: %s", group, day.Date.Format(dateLayout), o),
			})
		}
	}
	return out
}

func daysFingerprint(days []schedule.Day) string {
	var sb strings.Builder
	for _, day := range days {
		sb.WriteString(day.Date.Format(dateLayout))
		sb.WriteString(":")
		for _, o := range day.Outages {
			sb.WriteString(o.Range())
			sb.WriteString(",")
		}
		sb.WriteString(";")
	}
	return sb.String()
}
