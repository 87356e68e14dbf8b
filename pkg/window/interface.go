// Package window defines the capability interfaces between the
// snapshot logic and the windowing system that backs it. The tree is
// owned by an external server and may change between queries, so
// implementations hand out one point-in-time answer per call rather
// than a materialized tree.
package window

// ID identifies a window within the windowing system. Identifiers are
// only meaningful for the lifetime of one snapshot run; they are not
// stable across time or across displays.
type ID uint64

// None is the absent window: no focus target, or no parent.
const None ID = 0

// Props holds the per-window metadata used to classify and record a
// window. Each field is independently optional; nil means the
// property was absent, while a pointer to "" means it was present but
// empty. The distinction matters for storage (NULL vs empty text)
// even though both count as "no value" when deciding blankness.
type Props struct {
	Name  *string // WM_CLASS instance
	Class *string // WM_CLASS class
	Title *string // _NET_WM_NAME, falling back to WM_NAME
}

// Blank reports whether the window carries no usable metadata at all.
func (p Props) Blank() bool {
	return !hasValue(p.Name) && !hasValue(p.Class) && !hasValue(p.Title)
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

// Tree enumerates and describes windows on demand.
type Tree interface {
	// Children returns the ordered children of win. A failed query is
	// indistinguishable from a childless window: both return an empty
	// slice. Implementations log failures themselves.
	Children(win ID) []ID

	// Properties fetches the metadata for win. Fields that cannot be
	// read come back nil; the call itself never fails.
	Properties(win ID) Props
}

// Probe reports the environment state captured once per run, before
// the tree walk starts. Both queries are best-effort telemetry and
// degrade to safe defaults instead of failing.
type Probe interface {
	// IdleTime returns milliseconds since the last user input, or 0
	// if the idle-time extension is unsupported or the query fails.
	IdleTime() int64

	// FocusedWindow returns the current input-focus target, or None
	// if there is no focus or the query fails.
	FocusedWindow() ID
}
