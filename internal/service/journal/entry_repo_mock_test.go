package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc      func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByIDFunc     func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	UpdateFunc      func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	DeleteFunc      func(ctx context.Context, userID, entryID uuid.UUID) error
	ListFunc        func(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.JournalEntry
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Entry *domain.JournalEntry
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.JournalFilter
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockList        sync.RWMutex
	lockCountByUser sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.JournalEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.JournalEntry
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *entryRepoMock) Update(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.JournalEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, entry)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Entry *domain.JournalEntry
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *entryRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.JournalFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.JournalFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *entryRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("entryRepoMock.CountByUserFunc: method is nil but entryRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *entryRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	defer mock.lockCountByUser.RUnlock()
	return mock.calls.CountByUser
}
