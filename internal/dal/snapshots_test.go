package dal

import (
	"time"

	"go.etcd.io/bbolt"
)

func (s *BoltDBTestSuite) TestBoltDB_Snapshots() {
	key := SnapshotKey{ChannelID: "@outages", Group: "2.2"}
	otherKey := SnapshotKey{ChannelID: "@outages", Group: "1.1"}

	got, ok, err := s.store.GetSnapshot(key)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(got)

	want := Snapshot{
		Today: DaySchedule{Date: "20.11.2025", Timestamp: 1763589600, Outages: []string{"10:00-12:00 (2 год)"}},
		Tomorrow: &DaySchedule{
			Date: "21.11.2025", Timestamp: 1763676000, Outages: []string{},
		},
		LastCheck:  time.Date(2025, time.November, 20, 16, 10, 0, 0, time.UTC),
		LastUpdate: "2025-11-20T14:05:11.000Z",
	}
	s.Require().NoError(s.store.PutSnapshot(key, want))

	got, ok, err = s.store.GetSnapshot(key)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(want, got)
	}

	_, ok, err = s.store.GetSnapshot(otherKey)
	s.Require().NoError(err)
	s.False(ok)

	// overwritten as a whole
	replacement := Snapshot{
		Today:      DaySchedule{Date: "21.11.2025", Timestamp: 1763676000, Outages: []string{}},
		LastCheck:  time.Date(2025, time.November, 21, 0, 5, 0, 0, time.UTC),
		LastUpdate: "2025-11-20T22:01:00.000Z",
	}
	s.Require().NoError(s.store.PutSnapshot(key, replacement))
	got, ok, err = s.store.GetSnapshot(key)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(replacement, got)
		s.Nil(got.Tomorrow)
	}

	s.Require().NoError(s.store.DeleteSnapshot(key))
	_, ok, err = s.store.GetSnapshot(key)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSnapshot_Corrupted() {
	key := SnapshotKey{ChannelID: "@outages", Group: "2.2"}
	s.Require().NoError(s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(snapshotsBucket)).Put([]byte(key.String()), []byte("{not json"))
	}))

	_, _, err := s.store.GetSnapshot(key)
	s.Require().Error(err)
	s.ErrorContains(err, "unmarshal snapshot for key=@outages/2.2: ")
}

func (s *BoltDBTestSuite) TestBoltDB_GetSnapshot_EmptyIsAbsent() {
	key := SnapshotKey{ChannelID: "@outages", Group: "2.2"}
	s.Require().NoError(s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(snapshotsBucket)).Put([]byte(key.String()), []byte("{}"))
	}))

	got, ok, err := s.store.GetSnapshot(key)
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(Snapshot{}, got)
}

func (s *BoltDBTestSuite) TestBoltDB_ExportState() {
	now := time.Date(2025, time.November, 20, 16, 10, 0, 0, time.UTC)
	s.clock.Set(now)

	_, ok, err := s.store.GetExportState("google")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.PutExportState("google", "abc"))
	got, ok, err := s.store.GetExportState("google")
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(ExportState{Fingerprint: "abc", ExportedAt: now}, got)
	}

	_, ok, err = s.store.GetExportState("ics")
	s.Require().NoError(err)
	s.False(ok)
}
