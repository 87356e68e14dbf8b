package models

// Snapshot is one recorded observation of the window hierarchy. The
// table layout is fixed by existing deployments, so the schema is
// created from raw DDL rather than migrated from these structs; the
// gorm tags only describe the columns for inserts.
type Snapshot struct {
	SnapshotID int64  `gorm:"column:snapshot_id;primaryKey" json:"snapshot_id"`
	Timestamp  string `gorm:"column:timestamp;not null" json:"timestamp"`
	SampleTime int64  `gorm:"column:sample_time;not null" json:"sample_time"`
	IdleTime   int64  `gorm:"column:idle_time" json:"idle_time"` // milliseconds, 0 when unobtainable
}

// TableName keeps the deployed singular table name.
func (Snapshot) TableName() string { return "snapshot" }
