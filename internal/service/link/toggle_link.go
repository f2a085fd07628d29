package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// ToggleLinkStatus flips the active flag of a link.
func (s *Service) ToggleLinkStatus(ctx context.Context, actor *domain.Actor, input TokenInput) (*domain.Link, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to manage links")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.ownedLink(txCtx, actor, input.Token, "You do not have permission to manage this link")
		if err != nil {
			return err
		}

		updated, err = s.links.Toggle(txCtx, l.Token)
		if err != nil {
			return fmt.Errorf("toggle link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardBoxPath(updated.BoxID))

	s.log.InfoContext(ctx, "link status toggled",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", updated.BoxID.String()),
		slog.Bool("active", updated.IsActive),
	)

	return updated, nil
}
