package kicks

import (
	"context"
	"fmt"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// ListSessions returns the user's kick sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]*domain.KickSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByUser(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}
