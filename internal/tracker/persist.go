package tracker

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

const (
	// DefaultKey is the slot the state is persisted under.
	DefaultKey = "learning-tracker-storage"

	// SchemaVersion is written into every payload. Payloads carrying any
	// other version are discarded on load.
	SchemaVersion = 0
)

// envelope is the persisted payload:
//
//	{"state": {"items": [...], "activities": [...]}, "version": 0}
//
// Transient UI flags are not part of it; legacy payloads that still carry
// them decode fine because unknown fields are ignored.
type envelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

type persistedState struct {
	Items      []itemRecord     `json:"items"`
	Activities []activityRecord `json:"activities"`
}

type itemRecord struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Notes     string  `json:"notes"`
	CreatedAt int64   `json:"createdAt"`
}

type activityRecord struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Text           string  `json:"text"`
	LearningItemID *string `json:"learningItemId,omitempty"`
	CreatedAt      int64   `json:"createdAt"`
}

type state struct {
	items      []domain.LearningItem
	activities []domain.Activity
}

func encodeState(items []domain.LearningItem, activities []domain.Activity) ([]byte, error) {
	env := envelope{
		State: persistedState{
			Items:      make([]itemRecord, len(items)),
			Activities: make([]activityRecord, len(activities)),
		},
		Version: SchemaVersion,
	}
	for i, it := range items {
		env.State.Items[i] = toItemRecord(it)
	}
	for i, a := range activities {
		env.State.Activities[i] = toActivityRecord(a)
	}
	return json.Marshal(env)
}

func decodeState(data []byte) (state, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return state{}, fmt.Errorf("decode payload: %w", err)
	}
	if env.Version != SchemaVersion {
		return state{}, fmt.Errorf("unsupported schema version %d (want %d)", env.Version, SchemaVersion)
	}

	st := state{
		items:      make([]domain.LearningItem, 0, len(env.State.Items)),
		activities: make([]domain.Activity, 0, len(env.State.Activities)),
	}
	for _, r := range env.State.Items {
		st.items = append(st.items, toDomainItem(r))
	}
	for _, r := range env.State.Activities {
		st.activities = append(st.activities, toDomainActivity(r))
	}
	return st, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: record <-> domain
// ---------------------------------------------------------------------------

func toItemRecord(it domain.LearningItem) itemRecord {
	return itemRecord{
		ID:        it.ID,
		Title:     it.Title,
		Category:  string(it.Category),
		Status:    string(it.Status),
		Progress:  float64(it.Progress),
		Notes:     it.Notes,
		CreatedAt: it.CreatedAt.UnixMilli(),
	}
}

func toDomainItem(r itemRecord) domain.LearningItem {
	// Clamp before converting: int() of an out-of-range float is undefined.
	progress := min(max(r.Progress, 0), 100)
	return domain.LearningItem{
		ID:        r.ID,
		Title:     r.Title,
		Category:  domain.Category(r.Category),
		Status:    domain.Status(r.Status),
		Progress:  int(math.Round(progress)),
		Notes:     r.Notes,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
}

func toActivityRecord(a domain.Activity) activityRecord {
	return activityRecord{
		ID:             a.ID,
		Date:           a.Date,
		Text:           a.Text,
		LearningItemID: a.LearningItemID,
		CreatedAt:      a.CreatedAt.UnixMilli(),
	}
}

func toDomainActivity(r activityRecord) domain.Activity {
	return domain.Activity{
		ID:             r.ID,
		Date:           r.Date,
		Text:           r.Text,
		LearningItemID: r.LearningItemID,
		CreatedAt:      time.UnixMilli(r.CreatedAt),
	}
}

// Export returns the current state encoded exactly as it is persisted.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeState(s.items, s.activities)
}
