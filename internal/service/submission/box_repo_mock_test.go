package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

var _ boxRepo = &boxRepoMock{}

type boxRepoMock struct {
	GetByIDFunc func(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			BoxID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *boxRepoMock) GetByID(ctx context.Context, boxID uuid.UUID) (*domain.Box, error) {
	if mock.GetByIDFunc == nil {
		panic("boxRepoMock.GetByIDFunc: method is nil but boxRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		BoxID uuid.UUID
	}{
		Ctx:   ctx,
		BoxID: boxID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, boxID)
}

func (mock *boxRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	BoxID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
