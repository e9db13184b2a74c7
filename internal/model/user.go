package model

import "time"

// Role is the platform role of an authenticated account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// User is an authenticated platform account. Credentials and sessions live
// in the external auth provider; this table only carries profile data.
type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:128;not null" json:"name"`
	Role           Role      `gorm:"size:16;not null" json:"role"`
	OrganizationID string    `gorm:"index;size:36" json:"organization_id"`
	RestaurantID   *string   `gorm:"index;size:36" json:"restaurant_id,omitempty"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
