package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// GenerateLink creates a new active link for a box the actor administers.
func (s *Service) GenerateLink(ctx context.Context, actor *domain.Actor, input GenerateLinkInput) (*domain.Link, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to generate links")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.boxes.GetByID(txCtx, input.BoxID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get box: %w", err)
		}
		if !b.OwnedBy(actor) {
			return domain.NotOwner("Box not found or you do not have permission")
		}

		token, err := s.newToken()
		if err != nil {
			return fmt.Errorf("new link token: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.links.Create(txCtx, &domain.Link{
			Token:     token,
			BoxID:     b.ID,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardBoxPath(created.BoxID))

	s.log.InfoContext(ctx, "link generated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", created.BoxID.String()),
	)

	return created, nil
}
