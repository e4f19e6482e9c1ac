package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"eventplanner-backend/internal/store"
	"eventplanner-backend/internal/timekey"
)

// How long a moved entry stays highlighted after the list reorders around it.
const highlightDuration = 4 * time.Second

// Timeout for the background reconciling reload.
const quietReloadTimeout = 30 * time.Second

var (
	// ErrNoDrag is returned when a drop or hover arrives without a drag in
	// progress.
	ErrNoDrag = errors.New("no drag in progress")
	// ErrBusy is returned when a drag and the time picker would overlap;
	// the two are mutually exclusive.
	ErrBusy = errors.New("another edit is in progress")
	// ErrUnknownEntry is returned when an entry id does not occur in the
	// current snapshot.
	ErrUnknownEntry = errors.New("unknown schedule entry")
)

type dragState struct {
	ID         EntryID
	OriginKey  string
	HoverKey   string
	HoverIndex int
	committing bool
}

type pickerState struct {
	ID        EntryID
	BucketKey string
}

// Session drives one event's interactive schedule: it owns the snapshot, the
// drag/picker state machines, the optimistic patch after a commit and the
// reconciling quiet reload. One user session is assumed per event; the mutex
// only guards against overlapping HTTP handlers, not multi-user editing.
type Session struct {
	mu        sync.Mutex
	store     store.Store
	committer *Committer
	eventID   int64
	onCommit  func(eventID int64)

	snap      *Snapshot
	loading   bool
	lastError string

	closed  bool
	loadGen int

	drag       *dragState
	picker     *pickerState
	highlights map[EntryID]time.Time

	now func() time.Time
}

// NewSession creates a session for one event. onCommit, if set, runs after
// every successful reschedule (it feeds the push notification pool).
func NewSession(st store.Store, eventID int64, onCommit func(int64)) *Session {
	return &Session{
		store:      st,
		committer:  NewCommitter(st),
		eventID:    eventID,
		onCommit:   onCommit,
		highlights: make(map[EntryID]time.Time),
		now:        time.Now,
	}
}

// Load fetches all collections and replaces the snapshot, toggling the
// visible loading flag. On failure the previous snapshot is kept and the
// error is surfaced as the session's message.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	snap, err := LoadSnapshot(ctx, s.store, s.eventID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.loadGen {
		// The session went away or a newer load superseded this one;
		// discard the stale result.
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastError = fmt.Sprintf("failed to load schedule: %v", err)
		return err
	}
	s.lastError = ""
	s.snap = snap
	return nil
}

// ReloadQuiet runs the reconciling reload without touching the loading flag.
func (s *Session) ReloadQuiet() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), quietReloadTimeout)
	defer cancel()
	snap, err := LoadSnapshot(ctx, s.store, s.eventID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.loadGen {
		return
	}
	if err != nil {
		s.lastError = fmt.Sprintf("failed to refresh schedule: %v", err)
		return
	}
	s.snap = snap
}

// View is the renderable state of a session.
type View struct {
	Buckets     []DayBucket
	Loading     bool
	Error       string
	Dragging    string
	Highlighted []string
}

// View computes the current day buckets and session flags. Buckets are
// always derived fresh from the snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{Loading: s.loading, Error: s.lastError}
	if s.drag != nil {
		v.Dragging = s.drag.ID.String()
	}
	now := s.now()
	for id, until := range s.highlights {
		if until.Before(now) {
			delete(s.highlights, id)
			continue
		}
		v.Highlighted = append(v.Highlighted, id.String())
	}
	if s.snap != nil {
		v.Buckets = ComputeDayBuckets(s.snap.Event, s.snap)
	}
	return v
}

// StartDrag begins a drag for the given entry. Opening a drag while the time
// picker is open is not a defined transition.
func (s *Session) StartDrag(id EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.picker != nil || (s.drag != nil && s.drag.committing) {
		return ErrBusy
	}
	origin, ok := s.findEntryBucket(id)
	if !ok {
		return ErrUnknownEntry
	}
	s.drag = &dragState{ID: id, OriginKey: origin, HoverKey: origin, HoverIndex: -1}
	return nil
}

// Hover records the current drop target while dragging.
func (s *Session) Hover(bucketKey string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag == nil {
		return ErrNoDrag
	}
	s.drag.HoverKey = bucketKey
	s.drag.HoverIndex = index
	return nil
}

// CancelDrag ends a drag without a drop.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag != nil && !s.drag.committing {
		s.drag = nil
	}
}

// Drop commits the drag at the given position: the proposed time is computed
// against the target bucket's order with the dragged entry excluded, so
// same-day reorders and cross-day moves share one path. The drag session is
// terminated whether or not the commit succeeds.
func (s *Session) Drop(ctx context.Context, bucketKey string, index int) error {
	s.mu.Lock()
	if s.drag == nil {
		s.mu.Unlock()
		return ErrNoDrag
	}
	if s.drag.committing {
		s.mu.Unlock()
		return ErrBusy
	}
	if bucketKey != timekey.UnscheduledKey && !timekey.ValidDayKey(bucketKey) {
		s.mu.Unlock()
		return fmt.Errorf("invalid drop bucket %q", bucketKey)
	}
	dragged := s.drag.ID
	s.drag.committing = true

	var ordered []Entry
	if s.snap != nil {
		for _, b := range ComputeDayBuckets(s.snap.Event, s.snap) {
			if b.Key == bucketKey {
				ordered = b.Ordered()
				break
			}
		}
	}
	var instant string
	if proposed := ProposeTime(index, ordered, bucketKey, dragged); proposed != nil {
		instant = timekey.BuildInstant(bucketKey, timekey.ClampMinutes(*proposed))
	}
	s.mu.Unlock()

	patch, err := s.committer.Commit(ctx, dragged, instant)
	s.finishCommit(dragged, patch, err)
	return err
}

// OpenPicker opens the manual time editor for an entry. The picker and a
// drag are mutually exclusive.
func (s *Session) OpenPicker(id EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag != nil || s.picker != nil {
		return ErrBusy
	}
	bucket, ok := s.findEntryBucket(id)
	if !ok {
		return ErrUnknownEntry
	}
	s.picker = &pickerState{ID: id, BucketKey: bucket}
	return nil
}

// SavePicker commits a manually chosen instant (blank clears the schedule).
// An instant whose date differs from the picker's bucket is an implicit
// cross-day move; both go through the same committer and quiet reload as a
// drop.
func (s *Session) SavePicker(ctx context.Context, instant string) error {
	s.mu.Lock()
	if s.picker == nil {
		s.mu.Unlock()
		return ErrNoDrag
	}
	if instant != "" {
		if _, ok := timekey.Parse(instant); !ok {
			s.mu.Unlock()
			return fmt.Errorf("invalid instant %q", instant)
		}
	}
	id := s.picker.ID
	s.mu.Unlock()

	patch, err := s.committer.Commit(ctx, id, instant)
	s.finishCommit(id, patch, err)
	return err
}

// CancelPicker closes the time editor without saving.
func (s *Session) CancelPicker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker = nil
}

// finishCommit applies the outcome of a commit: the interactive session is
// always terminated; on success the optimistic patch lands, the entry is
// highlighted, subscribers are notified and a quiet reload reconciles; on
// failure only the error message changes.
func (s *Session) finishCommit(id EntryID, patch Patch, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drag = nil
	s.picker = nil

	if s.closed {
		return
	}
	if err != nil {
		s.lastError = fmt.Sprintf("failed to reschedule: %v", err)
		return
	}
	s.lastError = ""
	if s.snap != nil && patch != nil {
		patch(s.snap)
	}
	s.highlights[id] = s.now().Add(highlightDuration)
	if s.onCommit != nil {
		s.onCommit(s.eventID)
	}
	go s.ReloadQuiet()
}

// findEntryBucket locates the bucket key an entry currently occupies.
// Callers hold the mutex.
func (s *Session) findEntryBucket(id EntryID) (string, bool) {
	if s.snap == nil {
		return "", false
	}
	for _, e := range projectSnapshot(s.snap) {
		if e.ID == id {
			if e.DateKey == "" {
				return timekey.UnscheduledKey, true
			}
			return e.DateKey, true
		}
	}
	return "", false
}

// Close marks the session gone. In-flight loads and reloads that resolve
// afterwards are discarded rather than applied to stale state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Manager hands out one session per event, creating and loading it on first
// use.
type Manager struct {
	mu       sync.Mutex
	store    store.Store
	onCommit func(eventID int64)
	sessions map[int64]*Session
}

// NewManager creates a session manager over a record store.
func NewManager(st store.Store, onCommit func(int64)) *Manager {
	return &Manager{
		store:    st,
		onCommit: onCommit,
		sessions: make(map[int64]*Session),
	}
}

// Session returns the session for an event, loading it first if it is new.
// A failed initial load does not leave a broken session cached.
func (m *Manager) Session(ctx context.Context, eventID int64) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[eventID]
	if !ok {
		s = NewSession(m.store, eventID, m.onCommit)
		m.sessions[eventID] = s
	}
	m.mu.Unlock()

	if !ok {
		if err := s.Load(ctx); err != nil {
			m.mu.Lock()
			delete(m.sessions, eventID)
			m.mu.Unlock()
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close shuts down every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.Close()
	}
	m.sessions = make(map[int64]*Session)
}
