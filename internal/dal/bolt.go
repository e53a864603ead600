package dal

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBoltDB wraps an opened database. Migrations must have been applied.
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{snapshotsBucket, exportsBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check buckets: %w", err)
	}

	return &BoltDB{db: db, now: time.Now}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

var errBucketNotFound = errors.New("bucket not found")

func bucket(tx *bbolt.Tx, name string) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, fmt.Errorf("%w: %s", errBucketNotFound, name)
	}
	return b, nil
}
