package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/catalog"
	"github.com/nestlingapp/nestling-backend/internal/config"
	"github.com/nestlingapp/nestling-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	Update(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

// Entry dates may run slightly ahead of server time when the client's
// clock drifts.
const futureSkew = 5 * time.Minute

// Service provides journal entry management and mood aggregation.
type Service struct {
	entries  entryRepo
	settings settingsRepo
	catalog  *catalog.Catalog
	cfg      config.JournalConfig
	log      *slog.Logger
}

// NewService creates a new Journal service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	settings settingsRepo,
	cat *catalog.Catalog,
	cfg config.JournalConfig,
) *Service {
	return &Service{
		entries:  entries,
		settings: settings,
		catalog:  cat,
		cfg:      cfg,
		log:      log.With("service", "journal"),
	}
}
