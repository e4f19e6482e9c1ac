package model

import "time"

// Accommodation is a lodging option for an event. CheckIn and CheckOut are
// independent optional instants, so one record can appear on two different
// schedule days.
type Accommodation struct {
	ID          int64  `gorm:"primaryKey"`
	EventID     int64  `gorm:"index;not null"`
	Name        string `gorm:"size:256;not null"`
	Beds        int
	Coordinates string `gorm:"size:64"`
	Booked      bool
	CheckIn     string `gorm:"size:32"`
	CheckOut    string `gorm:"size:32"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
