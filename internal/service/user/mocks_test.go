package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertFunc      func(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx      context.Context
			Settings *domain.UserSettings
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *settingsRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetByUserIDFunc == nil {
		panic("settingsRepoMock.GetByUserIDFunc: method is nil but settingsRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	defer mock.lockGetByUserID.RUnlock()
	return mock.calls.GetByUserID
}

func (mock *settingsRepoMock) Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	if mock.UpsertFunc == nil {
		panic("settingsRepoMock.UpsertFunc: method is nil but settingsRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings *domain.UserSettings
	}{Ctx: ctx, Settings: settings}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, settings)
}

func (mock *settingsRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	Settings *domain.UserSettings
} {
	mock.lockUpsert.RLock()
	defer mock.lockUpsert.RUnlock()
	return mock.calls.Upsert
}
