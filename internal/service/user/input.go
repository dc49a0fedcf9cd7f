package user

import (
	"time"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// UpdateSettingsInput holds the parameters for updating preferences.
// Nil fields are left unchanged.
type UpdateSettingsInput struct {
	Timezone  *string
	WeekStyle *domain.WeekStyle
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Timezone == nil && i.WeekStyle == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Timezone != nil {
		if _, err := time.LoadLocation(*i.Timezone); err != nil || *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}
	if i.WeekStyle != nil && !i.WeekStyle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "week_style", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
