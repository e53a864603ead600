package service

import (
	"slices"

	"github.com/Roma7-7-7/outage-notifier/internal/dal"
)

type ChangeReason string

const (
	ReasonForced          ChangeReason = "forced"
	ReasonFirstRun        ChangeReason = "first_run"
	ReasonTodayChanged    ChangeReason = "today_changed"
	ReasonTomorrowChanged ChangeReason = "tomorrow_changed"
	ReasonNewDay          ChangeReason = "new_day"
)

// ChangeDecision tells whether a snapshot has to be announced.
type ChangeDecision struct {
	ShouldNotify bool
	IsFirstRun   bool
	Reasons      []ChangeReason
}

// DetectChanges compares the current snapshot with the previous one.
// A forced check always notifies and is never a first run. Without a previous
// snapshot the check is a first run. Otherwise every rule is evaluated and all
// matching reasons are collected:
//   - today's outages differ (order matters)
//   - tomorrow is present and was absent or differs
//   - today's date differs
//
// A tomorrow that disappeared is not a change on its own.
func DetectChanges(prev dal.Snapshot, hasPrev bool, current dal.Snapshot, force bool) ChangeDecision {
	if force {
		return ChangeDecision{ShouldNotify: true, Reasons: []ChangeReason{ReasonForced}}
	}
	if !hasPrev {
		return ChangeDecision{ShouldNotify: true, IsFirstRun: true, Reasons: []ChangeReason{ReasonFirstRun}}
	}

	var reasons []ChangeReason
	if !slices.Equal(prev.Today.Outages, current.Today.Outages) {
		reasons = append(reasons, ReasonTodayChanged)
	}
	if current.Tomorrow != nil && (prev.Tomorrow == nil || !slices.Equal(prev.Tomorrow.Outages, current.Tomorrow.Outages)) {
		reasons = append(reasons, ReasonTomorrowChanged)
	}
	if prev.Today.Date != current.Today.Date {
		reasons = append(reasons, ReasonNewDay)
	}

	return ChangeDecision{ShouldNotify: len(reasons) > 0, Reasons: reasons}
}
