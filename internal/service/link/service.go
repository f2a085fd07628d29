// Package link implements shareable box links: generation, activation
// toggling and removal. Every mutation is restricted to the box admin.
package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

type linkRepo interface {
	Create(ctx context.Context, l *domain.Link) (*domain.Link, error)
	GetByToken(ctx context.Context, token string) (*domain.Link, error)
	Toggle(ctx context.Context, token string) (*domain.Link, error)
	Delete(ctx context.Context, token string) (*domain.Link, error)
}

type boxRepo interface {
	GetByID(ctx context.Context, boxID uuid.UUID) (*domain.Box, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, paths ...string)
}

// Service provides link management operations.
type Service struct {
	links    linkRepo
	boxes    boxRepo
	tx       txManager
	notifier notifier
	newToken func() (string, error)
	log      *slog.Logger
}

// NewService creates a new Link service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	boxes boxRepo,
	tx txManager,
	notifier notifier,
) *Service {
	return &Service{
		links:    links,
		boxes:    boxes,
		tx:       tx,
		notifier: notifier,
		newToken: NewToken,
		log:      log.With("service", "link"),
	}
}

// ownedLink loads the link by token and its box, and fails unless the
// actor administers that box. A missing box counts as not owned.
func (s *Service) ownedLink(ctx context.Context, actor *domain.Actor, token, reason string) (*domain.Link, error) {
	l, err := s.links.GetByToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.NotFoundError{Entity: "Link"}
	}
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}

	b, err := s.boxes.GetByID(ctx, l.BoxID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get box: %w", err)
	}
	if !b.OwnedBy(actor) {
		return nil, domain.NotOwner(reason)
	}

	return l, nil
}
