package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// CreateEntryInput holds the parameters for creating a journal entry.
// TopicReferences and JourneyReferences are references the client
// supplied explicitly (e.g. from an edit form); references embedded as
// mention tokens in Content are resolved server-side and win on merge.
type CreateEntryInput struct {
	Content           string
	Mood              *domain.Mood
	EntryDate         time.Time
	TopicReferences   []domain.TopicReference
	JourneyReferences []domain.JourneyReference
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "invalid value"})
	}
	if i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for updating a journal entry.
// Nil fields are left unchanged. A non-nil reference slice replaces the
// explicit reference list and re-runs the merge against the content.
type UpdateEntryInput struct {
	EntryID           uuid.UUID
	Content           *string
	Mood              *domain.Mood
	EntryDate         *time.Time
	TopicReferences   []domain.TopicReference
	JourneyReferences []domain.JourneyReference
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Content == nil && i.Mood == nil && i.EntryDate == nil &&
		i.TopicReferences == nil && i.JourneyReferences == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "invalid value"})
	}
	if i.EntryDate != nil && i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput narrows a listing. Zero values mean no filter.
type ListEntriesInput struct {
	Mood *domain.Mood
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "invalid value"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoodStatsInput bounds the aggregation range.
type MoodStatsInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i MoodStatsInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
