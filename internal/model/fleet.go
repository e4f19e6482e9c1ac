package model

import "time"

// Vehicle is a fleet vehicle available for transport assignments.
type Vehicle struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:128;not null"`
	Driver    string    `gorm:"size:128"`
	Seats     int
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Airfield is a take-off site. Its name doubles as a location-name source for
// transport endpoint resolution.
type Airfield struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:256;not null"`
	ICAO        string    `gorm:"size:8"`
	Coordinates string    `gorm:"size:64"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
