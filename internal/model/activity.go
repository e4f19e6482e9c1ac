package model

import "time"

// Activity is one scheduled jump/activity within an event. Seq defines the
// natural display order independent of the scheduled time. The planning
// attributes below Schedule are opaque to the scheduler but must survive its
// read-modify-write cycle untouched.
type Activity struct {
	ID          int64  `gorm:"primaryKey"`
	EventID     int64  `gorm:"index;not null"`
	Seq         int    `gorm:"not null"`
	Name        string `gorm:"size:256;not null"`
	Schedule    string `gorm:"size:32"`
	Coordinates string `gorm:"size:64"`

	Elevation     int
	TakeoffSiteID *int64 `gorm:"index"`
	RiskNotes     string `gorm:"size:2048"`
	LandingArea   string `gorm:"size:512"`
	LandingSize   string `gorm:"size:128"`
	Obstacles     string `gorm:"size:512"`
	ApproachNotes string `gorm:"size:1024"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
