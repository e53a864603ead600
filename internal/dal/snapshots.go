package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const snapshotsBucket = "snapshots"

type (
	// DaySchedule is the rendered schedule of a single day.
	DaySchedule struct {
		Date      string   `json:"date"`
		Timestamp int64    `json:"timestamp"`
		Outages   []string `json:"outages"`
	}

	// Snapshot is the last observed schedule of a channel and group.
	// It is replaced as a whole on every completed check.
	Snapshot struct {
		Today      DaySchedule  `json:"today"`
		Tomorrow   *DaySchedule `json:"tomorrow,omitempty"`
		LastCheck  time.Time    `json:"last_check"`
		LastUpdate string       `json:"last_update"`
	}

	SnapshotKey struct {
		ChannelID string
		Group     string
	}
)

func (k SnapshotKey) String() string {
	return k.ChannelID + "/" + k.Group
}

// Empty reports a snapshot without a today schedule, e.g. a state file with "{}".
// Stores treat it as absent.
func (s Snapshot) Empty() bool {
	return s.Today.Date == ""
}

func (s *BoltDB) GetSnapshot(key SnapshotKey) (Snapshot, bool, error) {
	var res Snapshot
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, snapshotsBucket)
		if err != nil {
			return err
		}
		data := b.Get([]byte(key.String()))
		if data == nil {
			return nil
		}
		if err = json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("unmarshal snapshot for key=%s: %w", key, err)
		}
		found = !res.Empty()
		return nil
	})
	if err != nil || !found {
		return Snapshot{}, false, err
	}

	return res, true, nil
}

func (s *BoltDB) PutSnapshot(key SnapshotKey, snapshot Snapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, snapshotsBucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot for key=%s: %w", key, err)
		}
		if err = b.Put([]byte(key.String()), data); err != nil {
			return fmt.Errorf("put snapshot for key=%s: %w", key, err)
		}
		return nil
	})
}

func (s *BoltDB) DeleteSnapshot(key SnapshotKey) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, snapshotsBucket)
		if err != nil {
			return err
		}
		if err = b.Delete([]byte(key.String())); err != nil {
			return fmt.Errorf("delete snapshot for key=%s: %w", key, err)
		}
		return nil
	})
}
