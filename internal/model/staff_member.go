package model

import "time"

// StaffMember is a roster entry without platform credentials. It exists so a
// reading can credit the person who physically took it (taken_by) even when
// that person never logs in.
type StaffMember struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	RestaurantID string    `gorm:"index;not null;size:36" json:"restaurant_id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
