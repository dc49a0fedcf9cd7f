package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// GetEntry returns one of the user's journal entries.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
