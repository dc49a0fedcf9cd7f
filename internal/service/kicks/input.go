package kicks

import (
	"time"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// RecordSessionInput holds the parameters for recording a completed
// counting session.
type RecordSessionInput struct {
	KickCount int
	StartedAt time.Time
	Duration  time.Duration
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i RecordSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.KickCount < 1 {
		errs = append(errs, domain.FieldError{Field: "kick_count", Message: "must be at least 1"})
	}
	if i.KickCount > MaxKicksPerSession {
		errs = append(errs, domain.FieldError{Field: "kick_count", Message: "max 500 per session"})
	}
	if i.StartedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "started_at", Message: "required"})
	}
	if i.Duration <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be positive"})
	}
	if i.Duration > MaxSessionLength {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "max 12 hours"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsInput narrows a listing. Nil bounds mean no limit.
type ListSessionsInput struct {
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListSessionsInput) Validate() error {
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		return domain.NewValidationError("to", "must not precede from")
	}
	return nil
}

// DailyStatsInput bounds the aggregation range.
type DailyStatsInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i DailyStatsInput) Validate() error {
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
