package submission

import (
	"context"
	"sync"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	GetByTokenFunc func(ctx context.Context, token string) (*domain.Link, error)

	calls struct {
		GetByToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockGetByToken sync.RWMutex
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
