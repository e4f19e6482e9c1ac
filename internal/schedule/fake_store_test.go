package schedule

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"eventplanner-backend/internal/model"
)

// fakeStore is an in-memory Store for core tests, with per-call failure
// injection.
type fakeStore struct {
	mu sync.Mutex

	event          model.Event
	activities     []model.Activity
	transports     []model.Transport
	accommodations []model.Accommodation
	meals          []model.Meal
	others         []model.OtherEntry
	airfields      []model.Airfield

	failGet    bool
	failUpdate bool
	failList   bool

	updates int
}

var errInjected = errors.New("injected store failure")

func (f *fakeStore) DB() *gorm.DB { return nil }

func (f *fakeStore) list(err *error) {
	if f.failList {
		*err = errInjected
	}
}

func (f *fakeStore) ListSeasons(ctx context.Context) ([]model.Season, error) { return nil, nil }

func (f *fakeStore) ListEvents(ctx context.Context, seasonID int64) ([]model.Event, error) {
	return []model.Event{f.event}, nil
}

func (f *fakeStore) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return model.Event{}, errInjected
	}
	return f.event, nil
}

func (f *fakeStore) UpdateEvent(ctx context.Context, ev *model.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.event = *ev
	return nil
}

func (f *fakeStore) ListActivities(ctx context.Context, eventID int64) ([]model.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.list(&err)
	return append([]model.Activity(nil), f.activities...), err
}

func (f *fakeStore) GetActivity(ctx context.Context, id int64) (model.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return model.Activity{}, errInjected
	}
	for _, a := range f.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Activity{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateActivity(ctx context.Context, a *model.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errInjected
	}
	f.updates++
	for i := range f.activities {
		if f.activities[i].ID == a.ID {
			f.activities[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListTransports(ctx context.Context, eventID int64) ([]model.Transport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.list(&err)
	return append([]model.Transport(nil), f.transports...), err
}

func (f *fakeStore) GetTransport(ctx context.Context, id int64) (model.Transport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return model.Transport{}, errInjected
	}
	for _, tr := range f.transports {
		if tr.ID == id {
			return tr, nil
		}
	}
	return model.Transport{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateTransport(ctx context.Context, tr *model.Transport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errInjected
	}
	f.updates++
	for i := range f.transports {
		if f.transports[i].ID == tr.ID {
			f.transports[i] = *tr
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListAccommodations(ctx context.Context, eventID int64) ([]model.Accommodation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.list(&err)
	return append([]model.Accommodation(nil), f.accommodations...), err
}

func (f *fakeStore) GetAccommodation(ctx context.Context, id int64) (model.Accommodation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return model.Accommodation{}, errInjected
	}
	for _, acc := range f.accommodations {
		if acc.ID == id {
			return acc, nil
		}
	}
	return model.Accommodation{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateAccommodation(ctx context.Context, acc *model.Accommodation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errInjected
	}
	f.updates++
	for i := range f.accommodations {
		if f.accommodations[i].ID == acc.ID {
			f.accommodations[i] = *acc
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListMeals(ctx context.Context, eventID int64) ([]model.Meal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.list(&err)
	return append([]model.Meal(nil), f.meals...), err
}

func (f *fakeStore) GetMeal(ctx context.Context, id int64) (model.Meal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.meals {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Meal{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateMeal(ctx context.Context, m *model.Meal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errInjected
	}
	f.updates++
	for i := range f.meals {
		if f.meals[i].ID == m.ID {
			f.meals[i] = *m
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListOtherEntries(ctx context.Context, eventID int64) ([]model.OtherEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.list(&err)
	return append([]model.OtherEntry(nil), f.others...), err
}

func (f *fakeStore) GetOtherEntry(ctx context.Context, id int64) (model.OtherEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.others {
		if o.ID == id {
			return o, nil
		}
	}
	return model.OtherEntry{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateOtherEntry(ctx context.Context, o *model.OtherEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errInjected
	}
	f.updates++
	for i := range f.others {
		if f.others[i].ID == o.ID {
			f.others[i] = *o
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListVehicles(ctx context.Context) ([]model.Vehicle, error) { return nil, nil }

func (f *fakeStore) ListAirfields(ctx context.Context) ([]model.Airfield, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Airfield(nil), f.airfields...), nil
}

func (f *fakeStore) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	return nil, nil
}
