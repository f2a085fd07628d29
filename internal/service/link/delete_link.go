package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// DeleteLink removes a link and returns it.
func (s *Service) DeleteLink(ctx context.Context, actor *domain.Actor, input TokenInput) (*domain.Link, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to delete links")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var deleted *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.ownedLink(txCtx, actor, input.Token, "You do not have permission to delete this link")
		if err != nil {
			return err
		}

		deleted, err = s.links.Delete(txCtx, l.Token)
		if err != nil {
			return fmt.Errorf("delete link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardBoxPath(deleted.BoxID))

	s.log.InfoContext(ctx, "link deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", deleted.BoxID.String()),
	)

	return deleted, nil
}
