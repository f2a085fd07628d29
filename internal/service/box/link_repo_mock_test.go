package box

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	ListByBoxFunc func(ctx context.Context, boxID uuid.UUID) ([]*domain.Link, error)

	calls struct {
		ListByBox []struct {
			Ctx   context.Context
			BoxID uuid.UUID
		}
	}
	lockListByBox sync.RWMutex
}

func (mock *linkRepoMock) ListByBox(ctx context.Context, boxID uuid.UUID) ([]*domain.Link, error) {
	if mock.ListByBoxFunc == nil {
		panic("linkRepoMock.ListByBoxFunc: method is nil but linkRepo.ListByBox was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		BoxID uuid.UUID
	}{
		Ctx:   ctx,
		BoxID: boxID,
	}
	mock.lockListByBox.Lock()
	mock.calls.ListByBox = append(mock.calls.ListByBox, callInfo)
	mock.lockListByBox.Unlock()
	return mock.ListByBoxFunc(ctx, boxID)
}

func (mock *linkRepoMock) ListByBoxCalls() []struct {
	Ctx   context.Context
	BoxID uuid.UUID
} {
	mock.lockListByBox.RLock()
	calls := mock.calls.ListByBox
	mock.lockListByBox.RUnlock()
	return calls
}
