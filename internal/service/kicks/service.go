package kicks

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/config"
	"github.com/nestlingapp/nestling-backend/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, session *domain.KickSession) (*domain.KickSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*domain.KickSession, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

const (
	MaxKicksPerSession = 500
	MaxSessionLength   = 12 * time.Hour
)

// Start times may run slightly ahead of server time when the client's
// clock drifts.
const futureSkew = 5 * time.Minute

// Service provides kick-counter session tracking and daily aggregation.
type Service struct {
	sessions sessionRepo
	settings settingsRepo
	cfg      config.KicksConfig
	log      *slog.Logger
}

// NewService creates a new Kicks service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	settings settingsRepo,
	cfg config.KicksConfig,
) *Service {
	return &Service{
		sessions: sessions,
		settings: settings,
		cfg:      cfg,
		log:      log.With("service", "kicks"),
	}
}
