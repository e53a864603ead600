package service

import (
	"bytes"
	"fmt"
	"text/template"
)

const (
	todayLabel    = "Сьогодні"
	tomorrowLabel = "Завтра"
)

// messageTemplate renders the channel post in Telegram HTML.
//
//nolint:gochecknoglobals // it's template
var messageTemplate = template.Must(template.New("message").Parse(
	`{{define "day"}}<b>📅 {{.Label}} ({{.Date}}):</b>` + "\n" +
		`{{if .Outages}}🔴 Відключення:` + "\n" +
		`{{range .Outages}}<code>{{.}}</code>` + "\n" + `{{end}}` +
		`{{else}}✅ Відключення не заплановані` + "\n" + `{{end}}{{end}}` +

		`{{if .IsUpdate}}🔄 <b>ОНОВЛЕННЯ графіка відключень ({{html .GroupDisplay}})</b>` +
		`{{else}}⚡ <b>Графік відключень ({{html .GroupDisplay}})</b>{{end}}` + "\n" +
		`{{if .UpdatedAt}}🕐 Оновлено: {{html .UpdatedAt}}` + "\n" + `{{end}}` + "\n" +
		`{{template "day" .Today}}` +
		`{{with .Tomorrow}}` + "\n" + `{{template "day" .}}{{end}}` +
		"\n" + `<i>Джерело: ДТЕК</i>`,
))

type (
	// MessageData is everything the channel post shows.
	MessageData struct {
		Group     string
		IsUpdate  bool
		UpdatedAt string
		Today     DayMessage
		Tomorrow  *DayMessage
	}

	DayMessage struct {
		Date    string
		Outages []string
	}

	dayView struct {
		Label   string
		Date    string
		Outages []string
	}
)

// RenderMessage renders the post. It makes no decisions, the tomorrow section
// is shown whenever Tomorrow is set.
func RenderMessage(data MessageData) (string, error) {
	view := struct {
		GroupDisplay string
		IsUpdate     bool
		UpdatedAt    string
		Today        dayView
		Tomorrow     *dayView
	}{
		GroupDisplay: "Черга " + data.Group,
		IsUpdate:     data.IsUpdate,
		UpdatedAt:    data.UpdatedAt,
		Today:        dayView{Label: todayLabel, Date: data.Today.Date, Outages: data.Today.Outages},
	}
	if data.Tomorrow != nil {
		view.Tomorrow = &dayView{Label: tomorrowLabel, Date: data.Tomorrow.Date, Outages: data.Tomorrow.Outages}
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute message template: %w", err)
	}
	return buf.String(), nil
}
