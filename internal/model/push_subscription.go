package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// A subscription is notified when any of its equipment records a reading
// outside the acceptable range.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"-"`

	// Associations
	Equipment []*Equipment `gorm:"many2many:subscription_equipment_mapping;" json:"-"`
}
