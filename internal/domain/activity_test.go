package domain

import "testing"

func ptr[T any](v T) *T { return &v }

func TestActivity_LinkedTo(t *testing.T) {
	t.Parallel()

	linked := Activity{ID: "a1", LearningItemID: ptr("item-1")}
	unlinked := Activity{ID: "a2"}

	if !linked.LinkedTo("item-1") {
		t.Error("expected activity to be linked to item-1")
	}
	if linked.LinkedTo("item-2") {
		t.Error("activity must not match a different item")
	}
	if unlinked.LinkedTo("item-1") {
		t.Error("unlinked activity must not match any item")
	}
}
