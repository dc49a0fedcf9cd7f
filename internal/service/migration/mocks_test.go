package migration

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

var _ entryImporter = &entryImporterMock{}

type entryImporterMock struct {
	LatestEntryTimeFunc func(ctx context.Context, userID uuid.UUID) (time.Time, error)
	BulkCreateFunc      func(ctx context.Context, entries []*domain.JournalEntry) (int, error)

	calls struct {
		LatestEntryTime []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		BulkCreate []struct {
			Ctx     context.Context
			Entries []*domain.JournalEntry
		}
	}
	lockLatestEntryTime sync.RWMutex
	lockBulkCreate      sync.RWMutex
}

func (mock *entryImporterMock) LatestEntryTime(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	if mock.LatestEntryTimeFunc == nil {
		panic("entryImporterMock.LatestEntryTimeFunc: method is nil but entryImporter.LatestEntryTime was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLatestEntryTime.Lock()
	mock.calls.LatestEntryTime = append(mock.calls.LatestEntryTime, callInfo)
	mock.lockLatestEntryTime.Unlock()
	return mock.LatestEntryTimeFunc(ctx, userID)
}

func (mock *entryImporterMock) LatestEntryTimeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLatestEntryTime.RLock()
	defer mock.lockLatestEntryTime.RUnlock()
	return mock.calls.LatestEntryTime
}

func (mock *entryImporterMock) BulkCreate(ctx context.Context, entries []*domain.JournalEntry) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("entryImporterMock.BulkCreateFunc: method is nil but entryImporter.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []*domain.JournalEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, entries)
}

func (mock *entryImporterMock) BulkCreateCalls() []struct {
	Ctx     context.Context
	Entries []*domain.JournalEntry
} {
	mock.lockBulkCreate.RLock()
	defer mock.lockBulkCreate.RUnlock()
	return mock.calls.BulkCreate
}

var _ sessionImporter = &sessionImporterMock{}

type sessionImporterMock struct {
	LatestSessionTimeFunc func(ctx context.Context, userID uuid.UUID) (time.Time, error)
	BulkCreateFunc        func(ctx context.Context, sessions []*domain.KickSession) (int, error)

	calls struct {
		LatestSessionTime []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		BulkCreate []struct {
			Ctx      context.Context
			Sessions []*domain.KickSession
		}
	}
	lockLatestSessionTime sync.RWMutex
	lockBulkCreate        sync.RWMutex
}

func (mock *sessionImporterMock) LatestSessionTime(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	if mock.LatestSessionTimeFunc == nil {
		panic("sessionImporterMock.LatestSessionTimeFunc: method is nil but sessionImporter.LatestSessionTime was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLatestSessionTime.Lock()
	mock.calls.LatestSessionTime = append(mock.calls.LatestSessionTime, callInfo)
	mock.lockLatestSessionTime.Unlock()
	return mock.LatestSessionTimeFunc(ctx, userID)
}

func (mock *sessionImporterMock) LatestSessionTimeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLatestSessionTime.RLock()
	defer mock.lockLatestSessionTime.RUnlock()
	return mock.calls.LatestSessionTime
}

func (mock *sessionImporterMock) BulkCreate(ctx context.Context, sessions []*domain.KickSession) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("sessionImporterMock.BulkCreateFunc: method is nil but sessionImporter.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sessions []*domain.KickSession
	}{Ctx: ctx, Sessions: sessions}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, sessions)
}

func (mock *sessionImporterMock) BulkCreateCalls() []struct {
	Ctx      context.Context
	Sessions []*domain.KickSession
} {
	mock.lockBulkCreate.RLock()
	defer mock.lockBulkCreate.RUnlock()
	return mock.calls.BulkCreate
}
