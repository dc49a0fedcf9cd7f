package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// CreateEntry creates a journal entry for the authenticated user,
// resolving topic and journey references from its content.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len([]rune(input.Content)) > s.cfg.MaxContentLength {
		return nil, domain.NewValidationError("content", fmt.Sprintf("max %d characters", s.cfg.MaxContentLength))
	}
	if input.EntryDate.After(time.Now().Add(futureSkew)) {
		return nil, domain.NewValidationError("entry_date", "must not be in the future")
	}

	count, err := s.entries.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	if count >= s.cfg.MaxEntriesPerUser {
		return nil, domain.NewValidationError("entries", "limit reached")
	}

	topicRefs, journeyRefs := s.buildReferences(input.Content, input.TopicReferences, input.JourneyReferences)

	now := time.Now().UTC()
	entry := &domain.JournalEntry{
		ID:                uuid.New(),
		UserID:            userID,
		Content:           input.Content,
		Mood:              input.Mood,
		EntryDate:         input.EntryDate,
		TopicReferences:   topicRefs,
		JourneyReferences: journeyRefs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.Int("topic_refs", len(topicRefs)),
		slog.Int("journey_refs", len(journeyRefs)),
	)

	return created, nil
}
