package model

import "time"

// TemperatureReading is one timestamped measurement against a piece of
// equipment. Rows are append-only: never updated or deleted in normal
// operation.
//
// SnapshotMinTemp/SnapshotMaxTemp copy the equipment range in force when the
// reading was taken. Historical alert flags must be computed against the
// snapshot, not the live equipment range, so reports stay stable after an
// equipment is reconfigured.
type TemperatureReading struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	EquipmentID     string    `gorm:"index;not null;size:36" json:"equipment_id"`
	Value           float64   `gorm:"not null" json:"value"`
	RecordedAt      time.Time `gorm:"index;not null" json:"recorded_at"`
	Notes           string    `gorm:"size:512" json:"notes,omitempty"`
	SnapshotMinTemp *float64  `json:"snapshot_min_temp,omitempty"`
	SnapshotMaxTemp *float64  `json:"snapshot_max_temp,omitempty"`

	// CreatedBy is the authenticated account that submitted the reading.
	// TakenBy optionally names the person who physically took it, which may
	// be a roster staff member without platform access.
	CreatedBy string    `gorm:"size:36" json:"created_by"`
	TakenBy   string    `gorm:"size:128" json:"taken_by,omitempty"`
	CreatedAt time.Time `json:"-"`
}
