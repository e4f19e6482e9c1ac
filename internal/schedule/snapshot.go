package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"

	"eventplanner-backend/internal/model"
	"eventplanner-backend/internal/store"
)

// Snapshot is one consistent in-memory view of everything the scheduler
// reads for an event: the five schedulable collections plus the airfields
// that feed the location-name lookup. It is replaced wholesale on reload;
// the only in-place mutation is the committer's optimistic patch.
type Snapshot struct {
	Event          model.Event
	Activities     []model.Activity
	Transports     []model.Transport
	Accommodations []model.Accommodation
	Meals          []model.Meal
	Others         []model.OtherEntry
	Airfields      []model.Airfield
}

// LoadSnapshot fetches all collections for an event concurrently and waits
// for every fetch before returning, so bucketing never observes a half-read
// state. The fetches are not transactionally consistent with each other at
// the database; last write wins.
func LoadSnapshot(ctx context.Context, st store.Store, eventID int64) (*Snapshot, error) {
	snap := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ev, err := st.GetEvent(ctx, eventID)
		snap.Event = ev
		return err
	})
	g.Go(func() error {
		activities, err := st.ListActivities(ctx, eventID)
		snap.Activities = activities
		return err
	})
	g.Go(func() error {
		transports, err := st.ListTransports(ctx, eventID)
		snap.Transports = transports
		return err
	})
	g.Go(func() error {
		accommodations, err := st.ListAccommodations(ctx, eventID)
		snap.Accommodations = accommodations
		return err
	})
	g.Go(func() error {
		meals, err := st.ListMeals(ctx, eventID)
		snap.Meals = meals
		return err
	})
	g.Go(func() error {
		others, err := st.ListOtherEntries(ctx, eventID)
		snap.Others = others
		return err
	})
	g.Go(func() error {
		airfields, err := st.ListAirfields(ctx)
		snap.Airfields = airfields
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
