package domain

import "time"

// LearningItem is a skill or topic the user is tracking.
// Status and Progress are independent: a completed item may report
// less than 100% and vice versa.
type LearningItem struct {
	ID        string
	Title     string
	Category  Category
	Status    Status
	Progress  int // 0..100
	Notes     string
	CreatedAt time.Time
}
