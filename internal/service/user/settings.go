package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// GetSettings returns the user's preferences, falling back to defaults
// (UTC, week display) when nothing has been saved yet.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial preference update.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		settings = domain.DefaultSettings(userID)
	} else if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}
	if input.WeekStyle != nil {
		settings.WeekStyle = *input.WeekStyle
	}
	settings.UpdatedAt = time.Now().UTC()

	updated, err := s.settings.Upsert(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone", updated.Timezone),
		slog.String("week_style", updated.WeekStyle.String()),
	)

	return updated, nil
}
