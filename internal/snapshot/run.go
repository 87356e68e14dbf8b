package snapshot

import (
	"log"

	"github.com/hartenfels/worktrackage/internal/config"
	"github.com/hartenfels/worktrackage/internal/store"
	"github.com/hartenfels/worktrackage/internal/x11"
	"github.com/hartenfels/worktrackage/pkg/window"
)

// Environment is everything one run needs from the windowing system.
// Satisfied by *x11.Client; tests substitute fakes.
type Environment interface {
	window.Tree
	window.Probe
	Root() window.ID
}

// Execute performs one complete snapshot run against the real store
// and display: resolve the database path, open both connections, and
// hand off to Run. Every acquired resource is released on both the
// success and failure paths.
func Execute(cfg *config.Config) error {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return err
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("can't close database: %v", err)
		}
	}()

	if err := st.EnsureSchema(); err != nil {
		return err
	}

	env, err := x11.Connect(cfg.Display)
	if err != nil {
		return err
	}
	defer env.Close()

	return Run(cfg, st, env)
}

// Run takes one snapshot on an already-opened store and environment.
// The probe results are captured up front and held for the walk; the
// header row and every window row are written inside one transaction,
// so a failure anywhere leaves nothing behind.
func Run(cfg *config.Config, st *store.Store, env Environment) error {
	idle := env.IdleTime()

	if err := st.Begin(); err != nil {
		return err
	}
	defer st.Rollback()

	snapshotID, err := st.InsertSnapshot(cfg.SampleTime, idle)
	if err != nil {
		return err
	}

	w := &Walker{
		Tree:          env,
		Recorder:      st,
		SnapshotID:    snapshotID,
		Focus:         env.FocusedWindow(),
		ExcludeBlanks: cfg.ExcludeBlanks,
	}
	if err := w.Walk(env.Root()); err != nil {
		return err
	}

	return st.Commit()
}
