package model

import "time"

// Restaurant is one physical site of an organization.
type Restaurant struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:128;not null" json:"name"`
	Address        string    `gorm:"size:256" json:"address,omitempty"`
	OrganizationID string    `gorm:"index;not null;size:36" json:"organization_id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`

	// Associations
	Equipment []Equipment `gorm:"foreignKey:RestaurantID" json:"-"`
}
