package action

import (
	"context"
	"sync"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/service/submission"
)

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	CreateSubmissionFunc func(ctx context.Context, input submission.CreateSubmissionInput) (*domain.Submission, error)
	UpdateSubmissionFunc func(ctx context.Context, actor *domain.Actor, input submission.UpdateSubmissionInput) (*domain.Submission, error)

	calls struct {
		CreateSubmission []struct {
			Ctx   context.Context
			Input submission.CreateSubmissionInput
		}
		UpdateSubmission []struct {
			Ctx   context.Context
			Actor *domain.Actor
			Input submission.UpdateSubmissionInput
		}
	}
	lockCreateSubmission sync.RWMutex
	lockUpdateSubmission sync.RWMutex
}

func (mock *submissionServiceMock) CreateSubmission(ctx context.Context, input submission.CreateSubmissionInput) (*domain.Submission, error) {
	if mock.CreateSubmissionFunc == nil {
		panic("submissionServiceMock.CreateSubmissionFunc: method is nil but submissionService.CreateSubmission was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input submission.CreateSubmissionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateSubmission.Lock()
	mock.calls.CreateSubmission = append(mock.calls.CreateSubmission, callInfo)
	mock.lockCreateSubmission.Unlock()
	return mock.CreateSubmissionFunc(ctx, input)
}

func (mock *submissionServiceMock) CreateSubmissionCalls() []struct {
	Ctx   context.Context
	Input submission.CreateSubmissionInput
} {
	mock.lockCreateSubmission.RLock()
	calls := mock.calls.CreateSubmission
	mock.lockCreateSubmission.RUnlock()
	return calls
}

func (mock *submissionServiceMock) UpdateSubmission(ctx context.Context, actor *domain.Actor, input submission.UpdateSubmissionInput) (*domain.Submission, error) {
	if mock.UpdateSubmissionFunc == nil {
		panic("submissionServiceMock.UpdateSubmissionFunc: method is nil but submissionService.UpdateSubmission was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor *domain.Actor
		Input submission.UpdateSubmissionInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockUpdateSubmission.Lock()
	mock.calls.UpdateSubmission = append(mock.calls.UpdateSubmission, callInfo)
	mock.lockUpdateSubmission.Unlock()
	return mock.UpdateSubmissionFunc(ctx, actor, input)
}

func (mock *submissionServiceMock) UpdateSubmissionCalls() []struct {
	Ctx   context.Context
	Actor *domain.Actor
	Input submission.UpdateSubmissionInput
} {
	mock.lockUpdateSubmission.RLock()
	calls := mock.calls.UpdateSubmission
	mock.lockUpdateSubmission.RUnlock()
	return calls
}
