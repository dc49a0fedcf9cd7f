package kicks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// RecordSession stores a completed kick-counting session for the
// authenticated user.
func (s *Service) RecordSession(ctx context.Context, input RecordSessionInput) (*domain.KickSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.StartedAt.After(time.Now().Add(futureSkew)) {
		return nil, domain.NewValidationError("started_at", "must not be in the future")
	}

	count, err := s.sessions.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	if count >= s.cfg.MaxSessionsPerUser {
		return nil, domain.NewValidationError("sessions", "limit reached")
	}

	session := &domain.KickSession{
		ID:        uuid.New(),
		UserID:    userID,
		KickCount: input.KickCount,
		StartedAt: input.StartedAt,
		Duration:  input.Duration,
		Note:      input.Note,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "kick session recorded",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.Int("kicks", created.KickCount),
	)

	return created, nil
}
