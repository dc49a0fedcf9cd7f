package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/internal/mention"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// MigrateGuestData imports a guest-mode export into the authenticated
// user's account. For each record kind the newest server-side record
// acts as a cutoff: guest records at or before it are treated as
// already synced and skipped. Surviving records are uploaded
// sequentially in chunks; a failed chunk aborts the migration and the
// error is returned as-is, leaving earlier chunks in place.
func (s *Service) MigrateGuestData(ctx context.Context, input MigrateInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	if err := s.migrateEntries(ctx, userID, input.Data.JournalEntries, &result.Entries); err != nil {
		return nil, err
	}
	if err := s.migrateSessions(ctx, userID, input.Data.KickSessions, &result.Sessions); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "guest data migrated",
		slog.String("user_id", userID.String()),
		slog.Int("entries_imported", result.Entries.Imported),
		slog.Int("entries_skipped", result.Entries.Skipped),
		slog.Int("sessions_imported", result.Sessions.Imported),
		slog.Int("sessions_skipped", result.Sessions.Skipped),
	)

	return result, nil
}

func (s *Service) migrateEntries(ctx context.Context, userID uuid.UUID, guests []domain.GuestJournalEntry, res *KindResult) error {
	if len(guests) == 0 {
		return nil
	}

	cutoff, err := s.entries.LatestEntryTime(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("latest entry time: %w", err)
	}

	now := time.Now().UTC()
	var batch []*domain.JournalEntry

	for i, g := range guests {
		if !g.CreatedAt.After(cutoff) {
			res.Skipped++
			res.Errors = append(res.Errors, ItemError{Index: i, Reason: "already synced"})
			continue
		}
		if strings.TrimSpace(g.Content) == "" {
			res.Skipped++
			res.Errors = append(res.Errors, ItemError{Index: i, Reason: "empty content"})
			continue
		}

		var mood *domain.Mood
		if g.Mood != "" {
			m := domain.Mood(strings.ToUpper(strings.TrimSpace(g.Mood)))
			if !m.IsValid() {
				res.Skipped++
				res.Errors = append(res.Errors, ItemError{Index: i, Reason: "unknown mood"})
				continue
			}
			mood = &m
		}

		entryDate := g.EntryDate
		if entryDate.IsZero() {
			entryDate = g.CreatedAt
		}

		// Migrated content goes through the same reference pipeline
		// as entries created directly.
		refs := mention.ExtractReferences(g.Content, s.catalog.Topics, s.catalog.Journeys)

		batch = append(batch, &domain.JournalEntry{
			ID:                uuid.New(),
			UserID:            userID,
			Content:           g.Content,
			Mood:              mood,
			EntryDate:         entryDate,
			TopicReferences:   refs.Topics,
			JourneyReferences: refs.Journeys,
			CreatedAt:         g.CreatedAt,
			UpdatedAt:         now,
		})
	}

	for start := 0; start < len(batch); start += s.chunkSize() {
		end := min(start+s.chunkSize(), len(batch))
		n, err := s.entries.BulkCreate(ctx, batch[start:end])
		if err != nil {
			return fmt.Errorf("import entries: %w", err)
		}
		res.Imported += n
	}

	return nil
}

func (s *Service) migrateSessions(ctx context.Context, userID uuid.UUID, guests []domain.GuestKickSession, res *KindResult) error {
	if len(guests) == 0 {
		return nil
	}

	cutoff, err := s.sessions.LatestSessionTime(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("latest session time: %w", err)
	}

	var batch []*domain.KickSession

	for i, g := range guests {
		if !g.CreatedAt.After(cutoff) {
			res.Skipped++
			res.Errors = append(res.Errors, ItemError{Index: i, Reason: "already synced"})
			continue
		}
		if g.KickCount < 1 || g.StartedAt.IsZero() || g.Duration <= 0 {
			res.Skipped++
			res.Errors = append(res.Errors, ItemError{Index: i, Reason: "malformed session"})
			continue
		}

		batch = append(batch, &domain.KickSession{
			ID:        uuid.New(),
			UserID:    userID,
			KickCount: g.KickCount,
			StartedAt: g.StartedAt,
			Duration:  g.Duration,
			Note:      g.Note,
			CreatedAt: g.CreatedAt,
		})
	}

	for start := 0; start < len(batch); start += s.chunkSize() {
		end := min(start+s.chunkSize(), len(batch))
		n, err := s.sessions.BulkCreate(ctx, batch[start:end])
		if err != nil {
			return fmt.Errorf("import sessions: %w", err)
		}
		res.Imported += n
	}

	return nil
}

func (s *Service) chunkSize() int {
	if s.cfg.ChunkSize <= 0 {
		return 50
	}
	return s.cfg.ChunkSize
}
