package models

// WindowRecord is one window node within a snapshot. Window and
// parent identifiers are decimal text: X window IDs are unsigned and
// platform-width dependent, and text round-trips without precision
// loss. Identifiers are only unique within their snapshot.
type WindowRecord struct {
	SnapshotID int64   `gorm:"column:snapshot_id;primaryKey" json:"snapshot_id"`
	WindowID   string  `gorm:"column:window_id;primaryKey" json:"window_id"`
	ParentID   *string `gorm:"column:parent_id" json:"parent_id"` // nil for the root and for children of excluded windows
	Depth      int     `gorm:"column:depth;not null" json:"depth"`
	Focused    int     `gorm:"column:focused;not null" json:"focused"`
	Name       *string `gorm:"column:name" json:"name"`
	Class      *string `gorm:"column:class" json:"class"`
	Title      *string `gorm:"column:title" json:"title"`
}

// TableName keeps the deployed singular table name.
func (WindowRecord) TableName() string { return "window" }
