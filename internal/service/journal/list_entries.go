package journal

import (
	"context"
	"fmt"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// ListEntries returns the user's journal entries, newest first.
// Ordering is the repository's contract; the service only filters.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, userID, domain.JournalFilter{
		Mood: input.Mood,
		From: input.From,
		To:   input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}
