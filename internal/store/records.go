package store

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/hartenfels/worktrackage/internal/models"
	"github.com/hartenfels/worktrackage/pkg/window"
)

// InsertSnapshot writes the run's header row inside the open
// transaction and returns the store-assigned snapshot identity.
// idleMs is recorded as given; callers pass 0 when the idle time was
// unobtainable.
func (s *Store) InsertSnapshot(sampleTime int, idleMs int64) (int64, error) {
	if s.tx == nil {
		return 0, errors.New("no open transaction")
	}

	snap := &models.Snapshot{
		Timestamp:  Timestamp(time.Now()),
		SampleTime: int64(sampleTime),
		IdleTime:   idleMs,
	}

	result := s.tx.Create(snap)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to insert snapshot")
	}
	if result.RowsAffected != 1 || snap.SnapshotID == 0 {
		return 0, errors.Wrapf(ErrSnapshotID, "rows=%d id=%d",
			result.RowsAffected, snap.SnapshotID)
	}

	return snap.SnapshotID, nil
}

// InsertWindow writes one window row inside the open transaction.
// Window identities are serialized as decimal text here, not by the
// caller, so no component upstream has to care about integer widths.
// A parent of window.None is stored as NULL.
func (s *Store) InsertWindow(snapshotID int64, win, parent window.ID, depth, focused int, props window.Props) error {
	if s.tx == nil {
		return errors.New("no open transaction")
	}

	rec := &models.WindowRecord{
		SnapshotID: snapshotID,
		WindowID:   formatID(win),
		Depth:      depth,
		Focused:    focused,
		Name:       props.Name,
		Class:      props.Class,
		Title:      props.Title,
	}
	if parent != window.None {
		p := formatID(parent)
		rec.ParentID = &p
	}

	if result := s.tx.Create(rec); result.Error != nil {
		return errors.Wrapf(result.Error, "failed to insert window %s", rec.WindowID)
	}

	return nil
}

func formatID(id window.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Query runs one parameterized read against the store and scans the
// result rows into dest. Reads never join the run's transaction;
// snapshots are written all-or-nothing, so there is nothing coherent
// to read until after Commit.
func (s *Store) Query(sql string, dest any, args ...any) error {
	if err := s.db.Raw(sql, args...).Scan(dest).Error; err != nil {
		return errors.Wrap(err, "failed to query store")
	}
	return nil
}
