package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Subscribers are notified when the schedule of one of their events changes.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Events []*Event `gorm:"many2many:subscription_event_mapping;"`
}
