package tracker

import (
	"strings"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

const (
	MaxTitleLength = 200
	MaxNotesLength = 5000
	MaxTextLength  = 2000
)

// AddItemInput holds the fields of a new learning item. ID and CreatedAt
// are assigned by the store.
type AddItemInput struct {
	Title    string
	Category domain.Category
	Status   domain.Status
	Progress int
	Notes    string
}

// Validate checks all fields and collects all errors.
// The store does not call it; callers validate user input before submitting.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown value"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown value"})
	}
	if i.Progress < 0 || i.Progress > 100 {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if len(i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	return domain.NewValidationErrors(errs)
}

// UpdateItemInput is a partial update of a learning item. Nil fields keep
// their current value; ID and CreatedAt can never be changed.
type UpdateItemInput struct {
	Title    *string
	Category *domain.Category
	Status   *domain.Status
	Progress *int
	Notes    *string
}

// IsEmpty reports whether the update changes nothing.
func (i UpdateItemInput) IsEmpty() bool {
	return i.Title == nil && i.Category == nil && i.Status == nil && i.Progress == nil && i.Notes == nil
}

// Validate checks the fields present in the update.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "update", Message: "at least one field required"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown value"})
	}
	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	return domain.NewValidationErrors(errs)
}

// apply merges the present fields over item. Progress is clamped.
func (i UpdateItemInput) apply(item domain.LearningItem) domain.LearningItem {
	if i.Title != nil {
		item.Title = *i.Title
	}
	if i.Category != nil {
		item.Category = *i.Category
	}
	if i.Status != nil {
		item.Status = *i.Status
	}
	if i.Progress != nil {
		item.Progress = domain.ClampProgress(*i.Progress)
	}
	if i.Notes != nil {
		item.Notes = *i.Notes
	}
	return item
}

// AddActivityInput holds the fields of a new activity.
type AddActivityInput struct {
	Date           string // YYYY-MM-DD
	Text           string
	LearningItemID *string
}

// Validate checks all fields and collects all errors.
func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError

	if _, ok := domain.ParseDay(i.Date); !ok {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	errs = append(errs, validateText(i.Text)...)
	if i.LearningItemID != nil && strings.TrimSpace(*i.LearningItemID) == "" {
		errs = append(errs, domain.FieldError{Field: "learning_item_id", Message: "must not be blank"})
	}

	return domain.NewValidationErrors(errs)
}

// ItemFilter narrows FilterItems. Zero values match everything.
type ItemFilter struct {
	Search   string
	Category domain.Category
	Status   domain.Status
}

// Validate rejects unknown category and status values.
func (f ItemFilter) Validate() error {
	var errs []domain.FieldError
	if f.Category != "" && !f.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown value"})
	}
	if f.Status != "" && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown value"})
	}
	return domain.NewValidationErrors(errs)
}

// ValidateText checks a free-text activity entry.
func ValidateText(text string) error {
	return domain.NewValidationErrors(validateText(text))
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(title) > MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateText(text string) []domain.FieldError {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.FieldError{{Field: "text", Message: "required"}}
	}
	if len(text) > MaxTextLength {
		return []domain.FieldError{{Field: "text", Message: "max 2000 characters"}}
	}
	return nil
}
