package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const exportsBucket = "exports"

// ExportState remembers what was last pushed to an external schedule sink.
type ExportState struct {
	Fingerprint string    `json:"fingerprint"`
	ExportedAt  time.Time `json:"exported_at"`
}

func (s *BoltDB) GetExportState(sink string) (ExportState, bool, error) {
	var res ExportState
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, exportsBucket)
		if err != nil {
			return err
		}
		data := b.Get([]byte(sink))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// PutExportState stores the fingerprint with the current time.
func (s *BoltDB) PutExportState(sink, fingerprint string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, exportsBucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(ExportState{Fingerprint: fingerprint, ExportedAt: s.now()})
		if err != nil {
			return fmt.Errorf("marshal export state for sink=%s: %w", sink, err)
		}
		return b.Put([]byte(sink), data)
	})
}
