package model

import "time"

// Equipment is a monitored refrigeration or heating unit with its acceptable
// temperature range. MinTemp <= MaxTemp is expected from the admin forms but
// not enforced here.
type Equipment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Code         string    `gorm:"size:32" json:"code"` // human-assigned label, e.g. C001
	Name         string    `gorm:"size:128;not null" json:"name"`
	MinTemp      float64   `gorm:"not null" json:"min_temp"`
	MaxTemp      float64   `gorm:"not null" json:"max_temp"`
	RestaurantID string    `gorm:"index;not null;size:36" json:"restaurant_id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Associations
	Restaurant Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
