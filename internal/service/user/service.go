package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
}

// Service provides user preference management.
type Service struct {
	settings settingsRepo
	log      *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, settings settingsRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "user"),
	}
}
