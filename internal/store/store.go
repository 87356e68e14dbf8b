// Package store is the persistence gateway for snapshot runs. It owns
// the SQLite handle and the single per-run transaction; all inserts
// go through that transaction and the gateway never commits on its
// own. The schema is fixed by existing deployments and therefore
// created from literal DDL instead of AutoMigrate.
package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultDBName = ".worktrackage.db"

var (
	// ErrStoreUnavailable means the database file could not be
	// created or opened.
	ErrStoreUnavailable = errors.New("can't open database")

	// ErrNothingToCommit means Commit was called with no open
	// transaction.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrSnapshotID means the store reported something other than
	// exactly one generated identity for the snapshot header.
	ErrSnapshotID = errors.New("unexpected snapshot id from insert")
)

// The deployed schema, byte for byte. Foreign keys are declarative
// only: the foreign_keys pragma stays at SQLite's default (off), both
// because historical databases contain dangling parent references and
// because window rows are inserted child-before-parent during the
// walk.
const (
	snapshotDDL = `create table if not exists snapshot (
    snapshot_id integer primary key not null,
    timestamp   text                not null,
    sample_time integer             not null,
    idle_time   integer)`

	windowDDL = `create table if not exists window (
    snapshot_id integer not null,
    window_id   text    not null,
    parent_id   text,
    depth       integer not null,
    focused     integer not null,
    name        text,
    class       text,
    title       text,
    primary key (snapshot_id, window_id),
    foreign key (snapshot_id)
        references snapshot (snapshot_id)
        on delete cascade,
    foreign key (snapshot_id, parent_id)
        references window (snapshot_id, window_id)
        on delete set null)`
)

// Store wraps the database handle and at most one open transaction.
// It is owned by a single run and not safe for concurrent use.
type Store struct {
	db *gorm.DB
	tx *gorm.DB
}

// DefaultPath returns the per-user database path, ~/.worktrackage.db.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, defaultDBName), nil
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(ErrStoreUnavailable, "%s: %v", path, err)
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates the snapshot and window tables if they are
// absent. Safe to call on every run.
func (s *Store) EnsureSchema() error {
	for _, ddl := range []string{snapshotDDL, windowDDL} {
		if err := s.db.Exec(ddl).Error; err != nil {
			return errors.Wrap(err, "failed to create schema")
		}
	}
	return nil
}

// Begin opens the run's transaction. At most one transaction may be
// open at a time.
func (s *Store) Begin() error {
	if s.tx != nil {
		return errors.New("transaction already open")
	}
	tx := s.db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}
	s.tx = tx
	return nil
}

// Commit commits the open transaction.
func (s *Store) Commit() error {
	if s.tx == nil {
		return ErrNothingToCommit
	}
	err := s.tx.Commit().Error
	s.tx = nil
	if err != nil {
		return errors.Wrap(err, "failed to commit snapshot")
	}
	return nil
}

// Rollback discards the open transaction if there is one. It is safe
// to call unconditionally during cleanup; after a successful Commit
// it does nothing.
func (s *Store) Rollback() {
	if s.tx == nil {
		return
	}
	if err := s.tx.Rollback().Error; err != nil {
		log.Printf("can't roll back transaction: %v", err)
	}
	s.tx = nil
}

// Close releases the database handle. Any still-open transaction is
// rolled back first.
func (s *Store) Close() error {
	s.Rollback()
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Timestamp renders t in the deployed snapshot timestamp format:
// UTC, millisecond precision, with the seconds repeated between the
// %S and %f fields exactly as the original strftime format string
// produced them.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05:05.000Z")
}
