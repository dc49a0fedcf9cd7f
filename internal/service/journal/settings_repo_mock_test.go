package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByUserID sync.RWMutex
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
