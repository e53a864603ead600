package migrations

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/outage-notifier/internal/dal/migrations/v1"
	"github.com/Roma7-7-7/outage-notifier/internal/dal/migrations/v2"
)

// Migration is a single versioned change of the database layout.
type Migration interface {
	Version() int
	Description() string
	Up(db *bbolt.DB) error
}

// Record is stored in the migrations bucket under the version key once a migration is applied.
type Record struct {
	Description string    `json:"description"`
	AppliedAt   time.Time `json:"applied_at"`
}

const migrationsBucket = "migrations"

//nolint:gochecknoglobals // registry
var registeredMigrations = []Migration{
	v1.New(),
	v2.New(),
}

// RunMigrations applies pending migrations in version order and returns the applied versions.
func RunMigrations(db *bbolt.DB, log *slog.Logger) ([]int, error) {
	return run(db, registeredMigrations, log)
}

func run(db *bbolt.DB, all []Migration, log *slog.Logger) ([]int, error) {
	log = log.With("component", "migrations")

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	}); err != nil {
		return nil, fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := Applied(db)
	if err != nil {
		return nil, fmt.Errorf("get applied migrations: %w", err)
	}

	sorted := slices.Clone(all)
	slices.SortFunc(sorted, func(a, b Migration) int { return a.Version() - b.Version() })

	var done []int
	for _, m := range sorted {
		if _, ok := applied[m.Version()]; ok {
			continue
		}

		log.Info("Applying migration", "version", m.Version(), "description", m.Description())
		if err = m.Up(db); err != nil {
			return done, fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
		if err = record(db, m); err != nil {
			return done, fmt.Errorf("record migration v%d: %w", m.Version(), err)
		}
		done = append(done, m.Version())
	}

	if len(done) == 0 {
		log.Debug("No pending migrations found")
	} else {
		log.Info("Migrations applied", "versions", done)
	}
	return done, nil
}

// Applied returns the records of applied migrations by version.
func Applied(db *bbolt.DB) (map[int]Record, error) {
	res := make(map[int]Record)

	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			version, err := strconv.Atoi(string(k))
			if err != nil {
				return fmt.Errorf("parse version from key %q: %w", k, err)
			}
			var r Record
			if err = json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal record of v%d: %w", version, err)
			}
			res[version] = r
			return nil
		})
	})

	return res, err
}

func record(db *bbolt.DB, m Migration) error {
	data, err := json.Marshal(Record{Description: m.Description(), AppliedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return errors.New("migrations bucket not found")
		}
		return b.Put([]byte(strconv.Itoa(m.Version())), data)
	})
}
