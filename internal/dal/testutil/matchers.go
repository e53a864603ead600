package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/outage-notifier/internal/dal"
)

var _ gomock.Matcher = snapshotMatcher{}

// snapshotMatcher compares everything except LastCheck, which only has to be set.
type snapshotMatcher struct {
	t    *testing.T
	want dal.Snapshot
}

// NewSnapshotMatcher matches a dal.Snapshot equal to want apart from LastCheck.
// Differences are reported through t.
func NewSnapshotMatcher(t *testing.T, want dal.Snapshot) gomock.Matcher {
	return snapshotMatcher{t: t, want: want}
}

func (m snapshotMatcher) Matches(x any) bool {
	got, ok := x.(dal.Snapshot)
	if !ok {
		return false
	}
	if !assert.False(m.t, got.LastCheck.IsZero(), "LastCheck is not set") {
		return false
	}

	want := m.want
	want.LastCheck = got.LastCheck
	return assert.Equal(m.t, want, got)
}

func (m snapshotMatcher) String() string {
	return fmt.Sprintf("snapshot of %s (any LastCheck)", m.want.Today.Date)
}
