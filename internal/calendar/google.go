package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	propSource  = "source"
	propGroup   = "group"
	sourceValue = "outage-notifier"

	popupReminder = 15 // minutes
)

// EventParams holds optional event attributes.
type EventParams struct {
	ColorID     string
	Description string
}

// Google talks to the Calendar API on behalf of one group. Every event it
// creates is tagged with private properties source and group, and only
// tagged events of the same group are listed back.
type Google struct {
	events *calendar.EventsService
	group  string
}

// NewGoogle authenticates with a service account key file. The account needs
// write access to the target calendar.
func NewGoogle(ctx context.Context, credentialsPath, group string) (*Google, error) {
	svc, err := calendar.NewService(ctx,
		option.WithAuthCredentialsFile(option.ServiceAccount, credentialsPath),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Google{events: svc.Events, group: group}, nil
}

func (g *Google) props() map[string]string {
	return map[string]string{propSource: sourceValue, propGroup: g.group}
}

// ListOurEvents returns the ids of this group's events overlapping [timeMin, timeMax].
func (g *Google) ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error) {
	filters := make([]string, 0, 2)
	for k, v := range g.props() {
		filters = append(filters, k+"="+v)
	}

	var ids []string
	err := g.events.List(calendarID).
		Context(ctx).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		PrivateExtendedProperty(filters...).
		SingleEvents(true).
		Pages(ctx, func(page *calendar.Events) error {
			for _, e := range page.Items {
				if g.owns(e) {
					ids = append(ids, e.Id)
				}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return ids, nil
}

// owns double-checks the server side filter.
func (g *Google) owns(e *calendar.Event) bool {
	if e.Id == "" || e.ExtendedProperties == nil {
		return false
	}
	for k, v := range g.props() {
		if e.ExtendedProperties.Private[k] != v {
			return false
		}
	}
	return true
}

// InsertEvent creates a tagged event with a popup reminder and returns its id.
func (g *Google) InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params EventParams) (string, error) {
	ev := &calendar.Event{
		Summary:     summary,
		Description: params.Description,
		ColorId:     params.ColorID,
		Start:       eventTime(start),
		End:         eventTime(end),
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: g.props(),
		},
		Reminders: &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: popupReminder}},
			ForceSendFields: []string{"UseDefault", "Overrides"},
		},
	}

	created, err := g.events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.Id, nil
}

func (g *Google) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := g.events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

// eventTime keeps the IANA zone when there is one. "Local" and fixed zones
// are not accepted by the API, the RFC 3339 offset is enough for those.
func eventTime(t time.Time) *calendar.EventDateTime {
	res := &calendar.EventDateTime{DateTime: t.Format(time.RFC3339)}
	if name := t.Location().String(); name != "Local" && name != "UTC" {
		if _, err := time.LoadLocation(name); err == nil {
			res.TimeZone = name
		}
	}
	return res
}
