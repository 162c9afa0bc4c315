package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

// mockStorage keeps slots in memory unless a func field overrides it.
type mockStorage struct {
	LoadFunc   func(ctx context.Context, key string) ([]byte, error)
	SaveFunc   func(ctx context.Context, key string, data []byte) error
	DeleteFunc func(ctx context.Context, key string) error

	mu    sync.Mutex
	slots map[string][]byte
	saves []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{slots: make(map[string][]byte)}
}

func (m *mockStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.slots[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (m *mockStorage) Save(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	m.saves = append(m.saves, key)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), data...)
	return nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

func (m *mockStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.slots[key]
	return ok
}

// SaveCalls returns the keys of every Save call, failed ones included.
func (m *mockStorage) SaveCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.saves...)
}

func (m *mockStorage) put(key string, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = []byte(data)
}

func (m *mockStorage) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.slots[key])
}

// ===========================================================================
// Fixtures
// ===========================================================================

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testNow is 2024-03-15 10:00 UTC.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// newTestStore opens an empty store with a fixed clock and predictable ids.
func newTestStore(t *testing.T, opts ...Option) (*Store, *mockStorage, *fakeClock) {
	t.Helper()
	storage := newMockStorage()
	clock := newFakeClock(testNow)
	all := append([]Option{WithClock(clock.Now), WithIDGenerator(sequentialIDs())}, opts...)

	s, err := Open(context.Background(), testLogger(), storage, all...)
	require.NoError(t, err)
	return s, storage, clock
}

func ptr[T any](v T) *T { return &v }

func addItem(t *testing.T, s *Store, title string, status domain.Status) domain.LearningItem {
	t.Helper()
	item, err := s.AddItem(context.Background(), AddItemInput{
		Title:    title,
		Category: domain.CategoryDSA,
		Status:   status,
	})
	require.NoError(t, err)
	return item
}

func addActivity(t *testing.T, s *Store, date, text string, itemID *string) domain.Activity {
	t.Helper()
	a, err := s.AddActivity(context.Background(), AddActivityInput{Date: date, Text: text, LearningItemID: itemID})
	require.NoError(t, err)
	return a
}
