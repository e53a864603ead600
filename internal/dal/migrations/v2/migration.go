package v2

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV2 creates the bucket that tracks schedule exports
type MigrationV2 struct{}

func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

func (m *MigrationV2) Description() string {
	return "Create exports bucket"
}

func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte("exports")); err != nil {
			return fmt.Errorf("create exports bucket: %w", err)
		}
		return nil
	})
}

func New() *MigrationV2 {
	return &MigrationV2{}
}
