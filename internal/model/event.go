package model

import "time"

// Event lifecycle statuses.
const (
	EventStatusDraft    = "draft"
	EventStatusPlanned  = "planned"
	EventStatusScouted  = "scouted"
	EventStatusLaunched = "launched"
	EventStatusLive     = "live"
	EventStatusPast     = "past"
)

// Event is one multi-day group event within a season. Start and End are
// event-local wall-clock instants in the timekey layout; End may be blank
// for single-day events.
type Event struct {
	ID        int64     `gorm:"primaryKey"`
	SeasonID  int64     `gorm:"index;not null"`
	Name      string    `gorm:"size:256;not null"`
	Location  string    `gorm:"size:256"`
	Slots     int
	Status    string    `gorm:"size:32;not null;default:draft"`
	Start     string    `gorm:"size:32"`
	End       string    `gorm:"size:32"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Season       Season        `gorm:"constraint:OnDelete:CASCADE"`
	Participants []Participant `gorm:"many2many:event_participants;"`
	Activities   []Activity    `gorm:"foreignKey:EventID"`
}
