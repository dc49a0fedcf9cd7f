package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// UpdateEntry applies a partial update to one of the user's journal
// entries. Whenever the content or an explicit reference list changes,
// the reference pipeline runs again over the resulting content.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Content != nil && len([]rune(*input.Content)) > s.cfg.MaxContentLength {
		return nil, domain.NewValidationError("content", fmt.Sprintf("max %d characters", s.cfg.MaxContentLength))
	}
	if input.EntryDate != nil && input.EntryDate.After(time.Now().Add(futureSkew)) {
		return nil, domain.NewValidationError("entry_date", "must not be in the future")
	}

	entry, err := s.entries.GetByID(ctx, userID, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if input.Content != nil {
		entry.Content = *input.Content
	}
	if input.Mood != nil {
		entry.Mood = input.Mood
	}
	if input.EntryDate != nil {
		entry.EntryDate = *input.EntryDate
	}

	if input.Content != nil || input.TopicReferences != nil || input.JourneyReferences != nil {
		explicitTopics := input.TopicReferences
		if explicitTopics == nil {
			explicitTopics = entry.TopicReferences
		}
		explicitJourneys := input.JourneyReferences
		if explicitJourneys == nil {
			explicitJourneys = entry.JourneyReferences
		}
		entry.TopicReferences, entry.JourneyReferences = s.buildReferences(entry.Content, explicitTopics, explicitJourneys)
	}

	entry.UpdatedAt = time.Now().UTC()

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", updated.ID.String()),
	)

	return updated, nil
}
