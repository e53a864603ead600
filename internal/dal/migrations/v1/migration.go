package v1

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV1 creates the bucket holding the last observed schedule per channel and group
type MigrationV1 struct{}

func (m *MigrationV1) Version() int {
	return 1
}

func (m *MigrationV1) Description() string {
	return "Create snapshots bucket"
}

func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte("snapshots")); err != nil {
			return fmt.Errorf("create snapshots bucket: %w", err)
		}
		return nil
	})
}

func New() *MigrationV1 {
	return &MigrationV1{}
}
