package tracker

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// AddActivity appends a new activity with a fresh id and creation time.
// LearningItemID is not checked against existing items.
func (s *Store) AddActivity(ctx context.Context, input AddActivityInput) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addActivity(ctx, input)
}

// QuickLog records text for today, linked to the current focus item if
// there is one.
func (s *Store) QuickLog(ctx context.Context, text string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input := AddActivityInput{Date: s.today(), Text: text}
	if focus := s.currentFocus(); focus != nil {
		input.LearningItemID = &focus.ID
	}
	return s.addActivity(ctx, input)
}

func (s *Store) addActivity(ctx context.Context, input AddActivityInput) (domain.Activity, error) {
	prev := s.snapshot()

	activity := domain.Activity{
		ID:        s.freshID(),
		Date:      input.Date,
		Text:      input.Text,
		CreatedAt: s.stamp(),
	}
	if input.LearningItemID != nil {
		ref := *input.LearningItemID
		activity.LearningItemID = &ref
	}
	s.activities = append(s.activities, activity)

	if err := s.commit(ctx, prev); err != nil {
		return domain.Activity{}, err
	}

	attrs := []any{
		slog.String("activity_id", activity.ID),
		slog.String("date", activity.Date),
	}
	if activity.LearningItemID != nil {
		attrs = append(attrs, slog.String("item_id", *activity.LearningItemID))
	}
	s.logger(ctx).InfoContext(ctx, "activity logged", attrs...)

	return cloneActivity(activity), nil
}

// DeleteActivity removes the activity with the given id. An unknown id is
// ignored.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activityIndex(id)
	if i < 0 {
		s.logger(ctx).DebugContext(ctx, "delete of unknown activity ignored", slog.String("activity_id", id))
		return nil
	}

	prev := s.snapshot()
	s.activities = slices.Delete(s.activities, i, i+1)

	if err := s.commit(ctx, prev); err != nil {
		return err
	}

	s.logger(ctx).InfoContext(ctx, "activity deleted", slog.String("activity_id", id))
	return nil
}
