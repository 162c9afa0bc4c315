package domain

import "strings"

// Category groups learning items by subject area.
// Values are the strings stored in persisted payloads.
type Category string

const (
	CategoryDSA             Category = "DSA"
	CategoryWeb             Category = "Web"
	CategoryComputerScience Category = "CS"
	CategoryOther           Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryDSA, CategoryWeb, CategoryComputerScience, CategoryOther}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryDSA, CategoryWeb, CategoryComputerScience, CategoryOther:
		return true
	}
	return false
}

// ParseCategory resolves user input to a Category. Matching is
// case-insensitive and accepts a few spelled-out aliases.
func ParseCategory(s string) (Category, bool) {
	switch normalizeEnum(s) {
	case "dsa", "algorithms":
		return CategoryDSA, true
	case "web":
		return CategoryWeb, true
	case "cs", "computerscience", "computer science":
		return CategoryComputerScience, true
	case "other":
		return CategoryOther, true
	}
	return "", false
}

// Status is the learning state of an item. Any status may be set
// from any other; there is no enforced transition order.
type Status string

const (
	StatusNotStarted Status = "Not started"
	StatusInProgress Status = "In progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus resolves user input such as "in-progress", "In progress"
// or "completed" to a Status.
func ParseStatus(s string) (Status, bool) {
	switch normalizeEnum(s) {
	case "not started", "notstarted", "todo":
		return StatusNotStarted, true
	case "in progress", "inprogress", "active":
		return StatusInProgress, true
	case "completed", "done":
		return StatusCompleted, true
	}
	return "", false
}

func normalizeEnum(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return NormalizeText(s)
}
