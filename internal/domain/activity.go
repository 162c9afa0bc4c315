package domain

import "time"

// Activity is a dated free-text log entry.
type Activity struct {
	ID   string
	Date string // logical day, YYYY-MM-DD
	Text string
	// LearningItemID is a weak reference: it is used for lookup only and is
	// cleared together with the activity when the item is deleted.
	LearningItemID *string
	CreatedAt      time.Time
}

// LinkedTo reports whether the activity references the given item.
func (a Activity) LinkedTo(itemID string) bool {
	return a.LearningItemID != nil && *a.LearningItemID == itemID
}

// DayCount holds the number of activities logged on a day.
type DayCount struct {
	Date  string
	Count int
}

// TimelineEntry is an activity enriched with the title of its linked item.
// ItemTitle is empty when the activity is unlinked or the item is gone.
type TimelineEntry struct {
	Activity
	ItemTitle string
}

// TimelineDay groups the activities of one logical day, newest first.
type TimelineDay struct {
	Date    string
	Entries []TimelineEntry
}

// Dashboard holds the aggregated overview shown on the landing screen.
type Dashboard struct {
	ActiveCount      int
	CompletedCount   int
	Streak           int
	Days             []DayCount // oldest first
	CurrentFocus     *LearningItem
	RecentActivities []Activity // newest first
}
