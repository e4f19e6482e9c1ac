package model

import "time"

// Participant is a person assignable to events.
type Participant struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:256;not null"`
	Email     string    `gorm:"size:256"`
	Phone     string    `gorm:"size:64"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
