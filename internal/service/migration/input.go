package migration

import (
	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// Records beyond this cap are rejected outright; the client app never
// accumulates anywhere near this much in guest mode.
const maxRecordsPerKind = 5000

// MigrateInput holds the guest-mode export to import.
type MigrateInput struct {
	Data domain.GuestData
}

// Validate checks all fields and collects all errors.
func (i MigrateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Data.JournalEntries) == 0 && len(i.Data.KickSessions) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "nothing to migrate"})
	}
	if len(i.Data.JournalEntries) > maxRecordsPerKind {
		errs = append(errs, domain.FieldError{Field: "journal_entries", Message: "too many records"})
	}
	if len(i.Data.KickSessions) > maxRecordsPerKind {
		errs = append(errs, domain.FieldError{Field: "kick_sessions", Message: "too many records"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
