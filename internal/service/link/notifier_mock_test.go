package link

import (
	"context"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, paths ...string)

	calls struct {
		Notify []struct {
			Ctx   context.Context
			Paths []string
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, paths ...string) {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Paths []string
	}{
		Ctx:   ctx,
		Paths: paths,
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	mock.NotifyFunc(ctx, paths...)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx   context.Context
	Paths []string
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
