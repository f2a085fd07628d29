package box

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// ListBoxes returns the actor's boxes, newest first.
func (s *Service) ListBoxes(ctx context.Context, actor *domain.Actor) ([]*domain.Box, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to view boxes")
	}

	boxes, err := s.boxes.ListByAdmin(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	return boxes, nil
}

// GetBoxDetail returns a box with its links and submissions. Only the box
// admin may read it; a missing box and a foreign box look the same.
func (s *Service) GetBoxDetail(ctx context.Context, actor *domain.Actor, input GetBoxDetailInput) (*domain.BoxDetail, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to view a box")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.requireOwner(ctx, actor, input.BoxID, "Box not found or you do not have permission")
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotOwner("Box not found or you do not have permission")
	}
	if err != nil {
		return nil, fmt.Errorf("get box: %w", err)
	}

	detail := &domain.BoxDetail{Box: *b}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		links, err := s.links.ListByBox(gCtx, b.ID)
		if err != nil {
			return fmt.Errorf("list links: %w", err)
		}
		detail.Links = links
		return nil
	})
	g.Go(func() error {
		subs, err := s.submissions.ListByBox(gCtx, b.ID)
		if err != nil {
			return fmt.Errorf("list submissions: %w", err)
		}
		detail.Submissions = subs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}
