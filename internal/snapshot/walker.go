// Package snapshot captures one point-in-time observation of the
// window hierarchy and records it through the persistence gateway.
package snapshot

import (
	"log"

	"github.com/hartenfels/worktrackage/pkg/window"
)

// rootDepth is the depth recorded for the root window; each level of
// children below it increments by one.
const rootDepth = 1

// Recorder persists one window row inside the run's transaction.
// Implemented by *store.Store.
type Recorder interface {
	InsertWindow(snapshotID int64, win, parent window.ID, depth, focused int, props window.Props) error
}

// Walker performs the depth-first traversal over an externally-owned
// window tree, correlating each node with the focus target and
// recording the informative ones. It is built once per run and holds
// the probe results immutably for the walk's duration.
type Walker struct {
	Tree          window.Tree
	Recorder      Recorder
	SnapshotID    int64
	Focus         window.ID
	ExcludeBlanks bool
}

// Walk records the hierarchy rooted at root. Any insert failure
// aborts the walk immediately; everything else degrades in place.
func (w *Walker) Walk(root window.ID) error {
	_, err := w.visit(root, window.None, rootDepth)
	return err
}

// visit records win and its subtree. parent is the identity the row
// should reference: the direct parent if that parent's own row will
// exist, window.None otherwise. The return value is the depth of the
// focus target within this subtree, or 0 — every ancestor of the
// focus target ends up carrying the target's depth, not its own.
func (w *Walker) visit(win, parent window.ID, depth int) (int, error) {
	props := w.Tree.Properties(win)

	// Whether this node's row will exist has to be settled before
	// recursing: the children reference their parent by identity, and
	// a reference to a row that is never written must become NULL
	// instead. The root is always recorded.
	include := depth == rootDepth || !w.ExcludeBlanks || !props.Blank()

	childParent := win
	if !include {
		childParent = window.None
	}

	childFocused := 0
	for _, child := range w.Tree.Children(win) {
		f, err := w.visit(child, childParent, depth+1)
		if err != nil {
			return 0, err
		}
		if f > childFocused {
			childFocused = f
		}
	}

	focused := childFocused
	if focused == 0 && win == w.Focus {
		focused = depth
	}

	if !include {
		// Without a name, class or title there is nothing to classify
		// about this window. Its focus contribution still propagates.
		log.Printf("not inserting blank entry for window %d", win)
		return focused, nil
	}

	if err := w.Recorder.InsertWindow(w.SnapshotID, win, parent, depth, focused, props); err != nil {
		return 0, err
	}

	return focused, nil
}
