package schedule

import (
	"context"
	"fmt"

	"eventplanner-backend/internal/store"
)

// Patch applies a committed record back onto an in-memory snapshot, so the
// caller can reflect the change before the reconciling reload lands.
type Patch func(*Snapshot)

// Committer persists a new instant for one schedule entry. None of the
// entity kinds offers a partial-field update, so every commit is a
// read-modify-write: fetch the full record, overwrite the single targeted
// time field, and submit the whole record back.
type Committer struct {
	store store.Store
}

// NewCommitter creates a committer over a record store.
func NewCommitter(st store.Store) *Committer {
	return &Committer{store: st}
}

// Commit fetches the entry's record, rewrites the targeted time field to
// instant (blank clears the schedule) and persists the full record. On
// success it returns a patch for the optimistic local update; on failure
// nothing has been applied anywhere.
//
// For accommodations the entry kind selects the field: the check-in and
// check-out sub-kinds each target their own instant and leave the other
// untouched; an unscheduled accommodation dragged onto a day gets its
// check-in set.
func (c *Committer) Commit(ctx context.Context, id EntryID, instant string) (Patch, error) {
	switch id.Kind {
	case KindActivity:
		rec, err := c.store.GetActivity(ctx, id.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch activity %d: %w", id.ID, err)
		}
		rec.Schedule = instant
		if err := c.store.UpdateActivity(ctx, &rec); err != nil {
			return nil, fmt.Errorf("update activity %d: %w", id.ID, err)
		}
		return func(snap *Snapshot) {
			for i := range snap.Activities {
				if snap.Activities[i].ID == rec.ID {
					snap.Activities[i] = rec
					return
				}
			}
		}, nil

	case KindTransport:
		rec, err := c.store.GetTransport(ctx, id.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch transport %d: %w", id.ID, err)
		}
		rec.Schedule = instant
		if err := c.store.UpdateTransport(ctx, &rec); err != nil {
			return nil, fmt.Errorf("update transport %d: %w", id.ID, err)
		}
		return func(snap *Snapshot) {
			for i := range snap.Transports {
				if snap.Transports[i].ID == rec.ID {
					snap.Transports[i] = rec
					return
				}
			}
		}, nil

	case KindAccommodationIn, KindAccommodationOut, KindAccommodation:
		rec, err := c.store.GetAccommodation(ctx, id.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch accommodation %d: %w", id.ID, err)
		}
		if id.Kind == KindAccommodationOut {
			rec.CheckOut = instant
		} else {
			rec.CheckIn = instant
		}
		if err := c.store.UpdateAccommodation(ctx, &rec); err != nil {
			return nil, fmt.Errorf("update accommodation %d: %w", id.ID, err)
		}
		return func(snap *Snapshot) {
			for i := range snap.Accommodations {
				if snap.Accommodations[i].ID == rec.ID {
					snap.Accommodations[i] = rec
					return
				}
			}
		}, nil

	case KindMeal:
		rec, err := c.store.GetMeal(ctx, id.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch meal %d: %w", id.ID, err)
		}
		rec.Schedule = instant
		if err := c.store.UpdateMeal(ctx, &rec); err != nil {
			return nil, fmt.Errorf("update meal %d: %w", id.ID, err)
		}
		return func(snap *Snapshot) {
			for i := range snap.Meals {
				if snap.Meals[i].ID == rec.ID {
					snap.Meals[i] = rec
					return
				}
			}
		}, nil

	case KindOther:
		rec, err := c.store.GetOtherEntry(ctx, id.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch entry %d: %w", id.ID, err)
		}
		rec.Schedule = instant
		if err := c.store.UpdateOtherEntry(ctx, &rec); err != nil {
			return nil, fmt.Errorf("update entry %d: %w", id.ID, err)
		}
		return func(snap *Snapshot) {
			for i := range snap.Others {
				if snap.Others[i].ID == rec.ID {
					snap.Others[i] = rec
					return
				}
			}
		}, nil

	default:
		return nil, fmt.Errorf("unknown entry kind %q", id.Kind)
	}
}
