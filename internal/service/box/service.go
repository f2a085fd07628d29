// Package box implements the box actions: create, update, delete, and the
// owner's dashboard reads.
package box

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

type boxRepo interface {
	Create(ctx context.Context, b *domain.Box) (*domain.Box, error)
	GetByID(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
	Update(ctx context.Context, boxID uuid.UUID, params domain.BoxUpdateParams) (*domain.Box, error)
	Delete(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Box, error)
}

type linkRepo interface {
	ListByBox(ctx context.Context, boxID uuid.UUID) ([]*domain.Link, error)
}

type submissionRepo interface {
	ListByBox(ctx context.Context, boxID uuid.UUID) ([]*domain.Submission, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, paths ...string)
}

// Service provides box management operations.
//
// UpdateBox and DeleteBox only require a session unless strictOwnership is
// set: any signed-in user can change any box. strictOwnership adds the
// admin check.
type Service struct {
	boxes           boxRepo
	links           linkRepo
	submissions     submissionRepo
	tx              txManager
	notifier        notifier
	strictOwnership bool
	log             *slog.Logger
}

// NewService creates a new Box service.
func NewService(
	log *slog.Logger,
	boxes boxRepo,
	links linkRepo,
	submissions submissionRepo,
	tx txManager,
	notifier notifier,
	strictOwnership bool,
) *Service {
	return &Service{
		boxes:           boxes,
		links:           links,
		submissions:     submissions,
		tx:              tx,
		notifier:        notifier,
		strictOwnership: strictOwnership,
		log:             log.With("service", "box"),
	}
}

// requireOwner loads the box and fails unless actor is its admin.
func (s *Service) requireOwner(ctx context.Context, actor *domain.Actor, boxID uuid.UUID, reason string) (*domain.Box, error) {
	b, err := s.boxes.GetByID(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if !b.OwnedBy(actor) {
		return nil, domain.NotOwner(reason)
	}
	return b, nil
}
