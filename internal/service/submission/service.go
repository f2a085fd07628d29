// Package submission implements the anonymous submission flow and the
// owner's responses.
package submission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

type submissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)
	UpdateResponse(ctx context.Context, submissionID uuid.UUID, response string) (*domain.Submission, error)
}

type boxRepo interface {
	GetByID(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
}

type linkRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Link, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, paths ...string)
}

// Service provides submission operations.
//
// UpdateSubmission only requires a session unless strictOwnership is set,
// in which case the actor must administer the parent box.
type Service struct {
	submissions     submissionRepo
	boxes           boxRepo
	links           linkRepo
	tx              txManager
	notifier        notifier
	strictOwnership bool
	log             *slog.Logger
}

// NewService creates a new Submission service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	boxes boxRepo,
	links linkRepo,
	tx txManager,
	notifier notifier,
	strictOwnership bool,
) *Service {
	return &Service{
		submissions:     submissions,
		boxes:           boxes,
		links:           links,
		tx:              tx,
		notifier:        notifier,
		strictOwnership: strictOwnership,
		log:             log.With("service", "submission"),
	}
}
