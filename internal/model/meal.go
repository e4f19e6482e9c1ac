package model

import "time"

// Meal is a planned group meal.
type Meal struct {
	ID       int64  `gorm:"primaryKey"`
	EventID  int64  `gorm:"index;not null"`
	Name     string `gorm:"size:256;not null"`
	Location string `gorm:"size:256"`
	Schedule string `gorm:"size:32"`
	Notes    string `gorm:"size:1024"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
