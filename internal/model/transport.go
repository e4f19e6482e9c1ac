package model

import "time"

// Transport is one ground-crew route: a pickup/destination pair with the
// vehicles assigned to drive it.
type Transport struct {
	ID          int64  `gorm:"primaryKey"`
	EventID     int64  `gorm:"index;not null"`
	Pickup      string `gorm:"size:256"`
	Destination string `gorm:"size:256"`
	Passengers  int
	Schedule    string `gorm:"size:32"`
	Notes       string `gorm:"size:1024"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Vehicles []VehicleAssignment `gorm:"foreignKey:TransportID"`
}

// VehicleAssignment binds a fleet vehicle to a transport route. Name, Driver
// and Seats are denormalized from the vehicle at assignment time.
type VehicleAssignment struct {
	ID          int64  `gorm:"primaryKey"`
	TransportID int64  `gorm:"index;not null"`
	VehicleID   *int64 `gorm:"index"`
	Name        string `gorm:"size:128"`
	Driver      string `gorm:"size:128"`
	Seats       int
}
