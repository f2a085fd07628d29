package box

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// DeleteBox removes a box together with its submissions and links and
// returns the deleted box.
func (s *Service) DeleteBox(ctx context.Context, actor *domain.Actor, input DeleteBoxInput) (*domain.Box, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to delete a box")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var deleted *domain.Box
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.strictOwnership {
			if _, err := s.requireOwner(txCtx, actor, input.BoxID, "You do not have permission to delete this box"); err != nil {
				return fmt.Errorf("check owner: %w", err)
			}
		}

		var deleteErr error
		deleted, deleteErr = s.boxes.Delete(txCtx, input.BoxID)
		if deleteErr != nil {
			return fmt.Errorf("delete box: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardPath)

	s.log.InfoContext(ctx, "box deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", deleted.ID.String()),
	)

	return deleted, nil
}
