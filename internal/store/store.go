package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventplanner-backend/internal/model"
)

// Store defines the record-store operations the scheduler and API consume.
// Every schedulable entity kind exposes list, get-by-id and full-record
// update; none of them has a partial-field patch, so callers must
// read-modify-write.
type Store interface {
	DB() *gorm.DB

	ListSeasons(ctx context.Context) ([]model.Season, error)
	ListEvents(ctx context.Context, seasonID int64) ([]model.Event, error)
	GetEvent(ctx context.Context, id int64) (model.Event, error)
	UpdateEvent(ctx context.Context, ev *model.Event) error

	ListActivities(ctx context.Context, eventID int64) ([]model.Activity, error)
	GetActivity(ctx context.Context, id int64) (model.Activity, error)
	UpdateActivity(ctx context.Context, a *model.Activity) error

	ListTransports(ctx context.Context, eventID int64) ([]model.Transport, error)
	GetTransport(ctx context.Context, id int64) (model.Transport, error)
	UpdateTransport(ctx context.Context, tr *model.Transport) error

	ListAccommodations(ctx context.Context, eventID int64) ([]model.Accommodation, error)
	GetAccommodation(ctx context.Context, id int64) (model.Accommodation, error)
	UpdateAccommodation(ctx context.Context, acc *model.Accommodation) error

	ListMeals(ctx context.Context, eventID int64) ([]model.Meal, error)
	GetMeal(ctx context.Context, id int64) (model.Meal, error)
	UpdateMeal(ctx context.Context, m *model.Meal) error

	ListOtherEntries(ctx context.Context, eventID int64) ([]model.OtherEntry, error)
	GetOtherEntry(ctx context.Context, id int64) (model.OtherEntry, error)
	UpdateOtherEntry(ctx context.Context, o *model.OtherEntry) error

	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListAirfields(ctx context.Context) ([]model.Airfield, error)
	ListParticipants(ctx context.Context) ([]model.Participant, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListSeasons(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := s.db.WithContext(ctx).Order("year DESC, name").Find(&seasons).Error
	return seasons, err
}

func (s *gormStore) ListEvents(ctx context.Context, seasonID int64) ([]model.Event, error) {
	var events []model.Event
	q := s.db.WithContext(ctx).Preload("Participants").Order("start")
	if seasonID != 0 {
		q = q.Where("season_id = ?", seasonID)
	}
	err := q.Find(&events).Error
	return events, err
}

func (s *gormStore) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	var ev model.Event
	err := s.db.WithContext(ctx).Preload("Participants").First(&ev, id).Error
	return ev, err
}

func (s *gormStore) UpdateEvent(ctx context.Context, ev *model.Event) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(ev).Error
}

func (s *gormStore) ListActivities(ctx context.Context, eventID int64) ([]model.Activity, error) {
	var activities []model.Activity
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("seq").Find(&activities).Error
	return activities, err
}

func (s *gormStore) GetActivity(ctx context.Context, id int64) (model.Activity, error) {
	var a model.Activity
	err := s.db.WithContext(ctx).First(&a, id).Error
	return a, err
}

func (s *gormStore) UpdateActivity(ctx context.Context, a *model.Activity) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (s *gormStore) ListTransports(ctx context.Context, eventID int64) ([]model.Transport, error) {
	var transports []model.Transport
	err := s.db.WithContext(ctx).Preload("Vehicles").Where("event_id = ?", eventID).Order("id").Find(&transports).Error
	return transports, err
}

func (s *gormStore) GetTransport(ctx context.Context, id int64) (model.Transport, error) {
	var tr model.Transport
	err := s.db.WithContext(ctx).Preload("Vehicles").First(&tr, id).Error
	return tr, err
}

func (s *gormStore) UpdateTransport(ctx context.Context, tr *model.Transport) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(tr).Error
}

func (s *gormStore) ListAccommodations(ctx context.Context, eventID int64) ([]model.Accommodation, error) {
	var accommodations []model.Accommodation
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&accommodations).Error
	return accommodations, err
}

func (s *gormStore) GetAccommodation(ctx context.Context, id int64) (model.Accommodation, error) {
	var acc model.Accommodation
	err := s.db.WithContext(ctx).First(&acc, id).Error
	return acc, err
}

func (s *gormStore) UpdateAccommodation(ctx context.Context, acc *model.Accommodation) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(acc).Error
}

func (s *gormStore) ListMeals(ctx context.Context, eventID int64) ([]model.Meal, error) {
	var meals []model.Meal
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&meals).Error
	return meals, err
}

func (s *gormStore) GetMeal(ctx context.Context, id int64) (model.Meal, error) {
	var m model.Meal
	err := s.db.WithContext(ctx).First(&m, id).Error
	return m, err
}

func (s *gormStore) UpdateMeal(ctx context.Context, m *model.Meal) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (s *gormStore) ListOtherEntries(ctx context.Context, eventID int64) ([]model.OtherEntry, error) {
	var entries []model.OtherEntry
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&entries).Error
	return entries, err
}

func (s *gormStore) GetOtherEntry(ctx context.Context, id int64) (model.OtherEntry, error) {
	var o model.OtherEntry
	err := s.db.WithContext(ctx).First(&o, id).Error
	return o, err
}

func (s *gormStore) UpdateOtherEntry(ctx context.Context, o *model.OtherEntry) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

func (s *gormStore) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := s.db.WithContext(ctx).Order("name").Find(&vehicles).Error
	return vehicles, err
}

func (s *gormStore) ListAirfields(ctx context.Context) ([]model.Airfield, error) {
	var airfields []model.Airfield
	err := s.db.WithContext(ctx).Order("name").Find(&airfields).Error
	return airfields, err
}

func (s *gormStore) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	err := s.db.WithContext(ctx).Order("name").Find(&participants).Error
	return participants, err
}
