// Package migration imports guest-mode data into a freshly created
// account. The client uploads its local journal and kick-counter
// records in one batch; records the server already has (at or before
// the newest server-side record) are skipped. There is no retry or
// backoff and no idempotency beyond that timestamp cutoff.
package migration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/catalog"
	"github.com/nestlingapp/nestling-backend/internal/config"
	"github.com/nestlingapp/nestling-backend/internal/domain"
)

type entryImporter interface {
	LatestEntryTime(ctx context.Context, userID uuid.UUID) (time.Time, error)
	BulkCreate(ctx context.Context, entries []*domain.JournalEntry) (int, error)
}

type sessionImporter interface {
	LatestSessionTime(ctx context.Context, userID uuid.UUID) (time.Time, error)
	BulkCreate(ctx context.Context, sessions []*domain.KickSession) (int, error)
}

// Service migrates guest-mode data into an account.
type Service struct {
	entries  entryImporter
	sessions sessionImporter
	catalog  *catalog.Catalog
	cfg      config.MigrationConfig
	log      *slog.Logger
}

// NewService creates a new Migration service.
func NewService(
	log *slog.Logger,
	entries entryImporter,
	sessions sessionImporter,
	cat *catalog.Catalog,
	cfg config.MigrationConfig,
) *Service {
	return &Service{
		entries:  entries,
		sessions: sessions,
		catalog:  cat,
		cfg:      cfg,
		log:      log.With("service", "migration"),
	}
}

// ItemError explains why one guest record was skipped.
type ItemError struct {
	Index  int
	Reason string
}

// KindResult reports the outcome for one record kind.
type KindResult struct {
	Imported int
	Skipped  int
	Errors   []ItemError
}

// Result reports the outcome of a full guest-data migration.
type Result struct {
	Entries  KindResult
	Sessions KindResult
}
