package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/Roma7-7-7/outage-notifier/internal/schedule"
)

const (
	icsExporterName = "ics"
	icsProductID    = "-//outage-notifier//schedule//UK"
)

// ICSWriter renders outages into an RFC 5545 file that calendar apps can subscribe to.
type ICSWriter struct {
	path  string
	group string
	now   func() time.Time

	log *slog.Logger
}

func NewICSWriter(path, group string, log *slog.Logger) *ICSWriter {
	return &ICSWriter{
		path:  path,
		group: group,
		now:   time.Now,
		log:   log.With("component", "ics_writer"),
	}
}

func (w *ICSWriter) Name() string {
	return icsExporterName
}

func (w *ICSWriter) Export(ctx context.Context, days []schedule.Day) error {
	body := w.Render(days)
	if err := writeAtomic(w.path, []byte(body)); err != nil {
		return fmt.Errorf("write ics file=%s: %w", w.path, err)
	}
	w.log.DebugContext(ctx, "ICS file written", "path", w.path, "days", len(days))
	return nil
}

// Render returns the calendar with one VEVENT per outage. Event UIDs are
// derived from the group and the outage start so re-exports keep them stable.
func (w *ICSWriter) Render(days []schedule.Day) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Відключення, черга " + w.group)

	stamp := w.now().UTC()
	for _, day := range days {
		for _, o := range day.Outages {
			start, end := day.Span(o)
			ev := cal.AddEvent(eventUID(w.group, start))
			ev.SetDtStampTime(stamp)
			ev.SetStartAt(start)
			ev.SetEndAt(end)
			ev.SetSummary("Power off")
			ev.SetDescription(fmt.Sprintf("Черга %s, %s: %s", w.group, day.Date.Format("02.01.2006"), o))
		}
	}
	return cal.Serialize()
}

func eventUID(group string, start time.Time) string {
	name := group + "/" + start.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@outage-notifier"
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
