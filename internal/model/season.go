package model

import "time"

// Season groups the events of one planning year.
type Season struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:128;not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Events []Event `gorm:"foreignKey:SeasonID"`
}
