package model

import "time"

// OtherEntry is a miscellaneous logistics entry that does not fit the other
// schedule kinds (briefings, equipment pickups, and the like).
type OtherEntry struct {
	ID          int64  `gorm:"primaryKey"`
	EventID     int64  `gorm:"index;not null"`
	Name        string `gorm:"size:256;not null"`
	Coordinates string `gorm:"size:64"`
	Schedule    string `gorm:"size:32"`
	Description string `gorm:"size:1024"`
	Notes       string `gorm:"size:1024"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
