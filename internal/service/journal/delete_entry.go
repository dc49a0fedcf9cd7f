package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// DeleteEntry removes one of the user's journal entries.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}
