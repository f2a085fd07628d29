package box

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

var _ boxRepo = &boxRepoMock{}

type boxRepoMock struct {
	CreateFunc      func(ctx context.Context, b *domain.Box) (*domain.Box, error)
	DeleteFunc      func(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
	GetByIDFunc     func(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
	ListByAdminFunc func(ctx context.Context, adminID uuid.UUID) ([]*domain.Box, error)
	UpdateFunc      func(ctx context.Context, boxID uuid.UUID, params domain.BoxUpdateParams) (*domain.Box, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.Box
		}
		Delete []struct {
			Ctx   context.Context
			BoxID uuid.UUID
		}
		GetByID []struct {
			Ctx   context.Context
			BoxID uuid.UUID
		}
		ListByAdmin []struct {
			Ctx     context.Context
			AdminID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			BoxID  uuid.UUID
			Params domain.BoxUpdateParams
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByAdmin sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *boxRepoMock) Create(ctx context.Context, b *domain.Box) (*domain.Box, error) {
	if mock.CreateFunc == nil {
		panic("boxRepoMock.CreateFunc: method is nil but boxRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Box
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *boxRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Box
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boxRepoMock) Delete(ctx context.Context, boxID uuid.UUID) (*domain.Box, error) {
	if mock.DeleteFunc == nil {
		panic("boxRepoMock.DeleteFunc: method is nil but boxRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		BoxID uuid.UUID
	}{
		Ctx:   ctx,
		BoxID: boxID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, boxID)
}

func (mock *boxRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	BoxID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *boxRepoMock) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Box, error) {
	if mock.ListByAdminFunc == nil {
		panic("boxRepoMock.ListByAdminFunc: method is nil but boxRepo.ListByAdmin was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AdminID uuid.UUID
	}{
		Ctx:     ctx,
		AdminID: adminID,
	}
	mock.lockListByAdmin.Lock()
	mock.calls.ListByAdmin = append(mock.calls.ListByAdmin, callInfo)
	mock.lockListByAdmin.Unlock()
	return mock.ListByAdminFunc(ctx, adminID)
}

func (mock *boxRepoMock) ListByAdminCalls() []struct {
	Ctx     context.Context
	AdminID uuid.UUID
} {
	mock.lockListByAdmin.RLock()
	calls := mock.calls.ListByAdmin
	mock.lockListByAdmin.RUnlock()
	return calls
}

func (mock *boxRepoMock) Update(ctx context.Context, boxID uuid.UUID, params domain.BoxUpdateParams) (*domain.Box, error) {
	if mock.UpdateFunc == nil {
		panic("boxRepoMock.UpdateFunc: method is nil but boxRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BoxID  uuid.UUID
		Params domain.BoxUpdateParams
	}{
		Ctx:    ctx,
		BoxID:  boxID,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, boxID, params)
}

func (mock *boxRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	BoxID  uuid.UUID
	Params domain.BoxUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
