// Package tracker implements the learning-progress store: the single
// in-process owner of learning items and activities. Every mutation is
// persisted to a durable key-value slot before it returns.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-tracker/internal/domain"
	"github.com/heartmarshall/learning-tracker/pkg/ctxutil"
)

const (
	DefaultChartDays        = 7
	DefaultRecentActivities = 3

	// maxIDAttempts bounds retries when the id generator collides with an
	// id already in use.
	maxIDAttempts = 8
)

// Storage is a durable key-value slot holding the serialized state.
// Load returns domain.ErrNotFound when nothing has been saved under key.
// Deleting a missing slot is not an error.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Store holds items, activities and transient UI state. It is safe for
// use by multiple goroutines; each public operation is atomic.
type Store struct {
	storage Storage
	log     *slog.Logger

	key              string
	now              func() time.Time
	newID            func() string
	loc              *time.Location
	chartDays        int
	recentActivities int

	mu            sync.Mutex
	items         []domain.LearningItem
	activities    []domain.Activity
	lastCreatedAt time.Time
	addModalOpen  bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the slot key the state is persisted under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLocation sets the timezone that decides which logical day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithDashboard sets how many days the activity chart covers and how many
// recent activities the dashboard lists. Non-positive values keep defaults.
func WithDashboard(chartDays, recentActivities int) Option {
	return func(s *Store) {
		if chartDays > 0 {
			s.chartDays = chartDays
		}
		if recentActivities > 0 {
			s.recentActivities = recentActivities
		}
	}
}

// Open creates a Store and rehydrates it from storage. A missing or
// malformed slot yields an empty store; only I/O errors are returned.
func Open(ctx context.Context, log *slog.Logger, storage Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage:          storage,
		log:              log.With("component", "tracker"),
		key:              DefaultKey,
		now:              time.Now,
		newID:            uuid.NewString,
		loc:              time.UTC,
		chartDays:        DefaultChartDays,
		recentActivities: DefaultRecentActivities,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := storage.Load(ctx, s.key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.logger(ctx).DebugContext(ctx, "no persisted state, starting empty",
			slog.String("key", s.key),
		)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load state %q: %w", s.key, err)
	}

	st, err := decodeState(data)
	if err != nil {
		s.logger(ctx).WarnContext(ctx, "discarding malformed persisted state",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
		return s, nil
	}

	s.items = st.items
	s.activities = st.activities
	for _, it := range s.items {
		s.lastCreatedAt = later(s.lastCreatedAt, it.CreatedAt)
	}
	for _, a := range s.activities {
		s.lastCreatedAt = later(s.lastCreatedAt, a.CreatedAt)
	}

	s.logger(ctx).InfoContext(ctx, "state loaded",
		slog.String("key", s.key),
		slog.Int("items", len(s.items)),
		slog.Int("activities", len(s.activities)),
	)

	return s, nil
}

// Items returns a copy of all items in insertion order.
func (s *Store) Items() []domain.LearningItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Item returns the item with the given id.
func (s *Store) Item(id string) (domain.LearningItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.itemIndex(id)
	if i < 0 {
		return domain.LearningItem{}, false
	}
	return s.items[i], true
}

// Activities returns a copy of all activities in insertion order.
func (s *Store) Activities() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.activities))
	for i, a := range s.activities {
		out[i] = cloneActivity(a)
	}
	return out
}

// Reset deletes the persisted slot and empties the store. If the delete
// fails the in-memory state is left as it was.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete state %q: %w", s.key, err)
	}

	removed := len(s.items) + len(s.activities)
	s.items = nil
	s.activities = nil

	s.logger(ctx).InfoContext(ctx, "state reset",
		slog.String("key", s.key),
		slog.Int("entries_removed", removed),
	)

	return nil
}

// SetAddModalOpen toggles the transient add-item flag. It is never persisted.
func (s *Store) SetAddModalOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addModalOpen = open
}

// AddModalOpen reports the transient add-item flag.
func (s *Store) AddModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addModalOpen
}

// ---------------------------------------------------------------------------
// Internal helpers (callers hold s.mu)
// ---------------------------------------------------------------------------

type snapshot struct {
	items         []domain.LearningItem
	activities    []domain.Activity
	lastCreatedAt time.Time
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		items:         slices.Clone(s.items),
		activities:    slices.Clone(s.activities),
		lastCreatedAt: s.lastCreatedAt,
	}
}

func (s *Store) restore(prev snapshot) {
	s.items = prev.items
	s.activities = prev.activities
	s.lastCreatedAt = prev.lastCreatedAt
}

// commit writes the whole state to storage. If the write fails the state is
// rolled back to prev so memory never runs ahead of the durable slot.
func (s *Store) commit(ctx context.Context, prev snapshot) error {
	data, err := encodeState(s.items, s.activities)
	if err != nil {
		s.restore(prev)
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.restore(prev)
		return fmt.Errorf("save state %q: %w", s.key, err)
	}
	return nil
}

// stamp returns the creation time for a new entity with millisecond
// precision. Timestamps never go backwards, even if the clock does.
func (s *Store) stamp() time.Time {
	t := time.UnixMilli(s.now().UnixMilli())
	if t.Before(s.lastCreatedAt) {
		t = s.lastCreatedAt
	}
	s.lastCreatedAt = t
	return t
}

// freshID returns an id not yet used by any item or activity.
func (s *Store) freshID() string {
	for range maxIDAttempts {
		id := s.newID()
		if id != "" && !s.idInUse(id) {
			return id
		}
	}
	return uuid.NewString()
}

func (s *Store) idInUse(id string) bool {
	return s.itemIndex(id) >= 0 || s.activityIndex(id) >= 0
}

func (s *Store) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it domain.LearningItem) bool { return it.ID == id })
}

func (s *Store) activityIndex(id string) int {
	return slices.IndexFunc(s.activities, func(a domain.Activity) bool { return a.ID == id })
}

func (s *Store) today() string {
	return domain.FormatDay(s.now(), s.loc)
}

func (s *Store) logger(ctx context.Context) *slog.Logger {
	if id := ctxutil.InvocationIDFromCtx(ctx); id != "" {
		return s.log.With(slog.String("invocation_id", id))
	}
	return s.log
}

func cloneActivity(a domain.Activity) domain.Activity {
	if a.LearningItemID != nil {
		id := *a.LearningItemID
		a.LearningItemID = &id
	}
	return a
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
