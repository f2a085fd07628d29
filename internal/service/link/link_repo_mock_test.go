package link

import (
	"context"
	"sync"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	CreateFunc     func(ctx context.Context, l *domain.Link) (*domain.Link, error)
	DeleteFunc     func(ctx context.Context, token string) (*domain.Link, error)
	GetByTokenFunc func(ctx context.Context, token string) (*domain.Link, error)
	ToggleFunc     func(ctx context.Context, token string) (*domain.Link, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Link
		}
		Delete []struct {
			Ctx   context.Context
			Token string
		}
		GetByToken []struct {
			Ctx   context.Context
			Token string
		}
		Toggle []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByToken sync.RWMutex
	lockToggle     sync.RWMutex
}

func (mock *linkRepoMock) Create(ctx context.Context, l *domain.Link) (*domain.Link, error) {
	if mock.CreateFunc == nil {
		panic("linkRepoMock.CreateFunc: method is nil but linkRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Link
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *linkRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Link
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *linkRepoMock) Delete(ctx context.Context, token string) (*domain.Link, error) {
	if mock.DeleteFunc == nil {
		panic("linkRepoMock.DeleteFunc: method is nil but linkRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, token)
}

func (mock *linkRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *linkRepoMock) GetByToken(ctx context.Context, token string) (*domain.Link, error) {
	if mock.GetByTokenFunc == nil {
		panic("linkRepoMock.GetByTokenFunc: method is nil but linkRepo.GetByToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockGetByToken.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, callInfo)
	mock.lockGetByToken.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *linkRepoMock) GetByTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetByToken.RLock()
	calls := mock.calls.GetByToken
	mock.lockGetByToken.RUnlock()
	return calls
}

func (mock *linkRepoMock) Toggle(ctx context.Context, token string) (*domain.Link, error) {
	if mock.ToggleFunc == nil {
		panic("linkRepoMock.ToggleFunc: method is nil but linkRepo.Toggle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, token)
}

func (mock *linkRepoMock) ToggleCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}
