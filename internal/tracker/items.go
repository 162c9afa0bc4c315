package tracker

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// AddItem appends a new learning item with a fresh id and creation time.
// Progress is clamped to [0, 100].
func (s *Store) AddItem(ctx context.Context, input AddItemInput) (domain.LearningItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snapshot()

	item := domain.LearningItem{
		ID:        s.freshID(),
		Title:     input.Title,
		Category:  input.Category,
		Status:    input.Status,
		Progress:  domain.ClampProgress(input.Progress),
		Notes:     input.Notes,
		CreatedAt: s.stamp(),
	}
	s.items = append(s.items, item)

	if err := s.commit(ctx, prev); err != nil {
		return domain.LearningItem{}, err
	}

	s.logger(ctx).InfoContext(ctx, "item created",
		slog.String("item_id", item.ID),
		slog.String("category", item.Category.String()),
		slog.String("status", item.Status.String()),
	)

	return item, nil
}

// UpdateItem merges input over the item with the given id. An unknown id
// is ignored and nothing is written.
func (s *Store) UpdateItem(ctx context.Context, id string, input UpdateItemInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		s.logger(ctx).DebugContext(ctx, "update of unknown item ignored", slog.String("item_id", id))
		return nil
	}

	prev := s.snapshot()
	s.items[i] = input.apply(s.items[i])

	if err := s.commit(ctx, prev); err != nil {
		return err
	}

	s.logger(ctx).InfoContext(ctx, "item updated",
		slog.String("item_id", id),
		slog.Int("progress", s.items[i].Progress),
		slog.String("status", s.items[i].Status.String()),
	)

	return nil
}

// DeleteItem removes the item and every activity linked to it. Linked
// activities are removed even when no item has the id. When nothing
// matches, nothing is written.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 && !slices.ContainsFunc(s.activities, func(a domain.Activity) bool { return a.LinkedTo(id) }) {
		s.logger(ctx).DebugContext(ctx, "delete of unknown item ignored", slog.String("item_id", id))
		return nil
	}

	prev := s.snapshot()

	if i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	before := len(s.activities)
	s.activities = slices.DeleteFunc(s.activities, func(a domain.Activity) bool {
		return a.LinkedTo(id)
	})

	if err := s.commit(ctx, prev); err != nil {
		return err
	}

	s.logger(ctx).InfoContext(ctx, "item deleted",
		slog.String("item_id", id),
		slog.Int("activities_removed", before-len(s.activities)),
	)

	return nil
}
