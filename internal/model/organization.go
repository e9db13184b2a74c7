package model

import "time"

// Organization is the top-level tenancy boundary. Every restaurant belongs
// to exactly one organization.
type Organization struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`

	// Associations
	Restaurants []Restaurant `gorm:"foreignKey:OrganizationID" json:"-"`
}
