package box

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// UpdateBox replaces the name and description of a box.
func (s *Service) UpdateBox(ctx context.Context, actor *domain.Actor, input UpdateBoxInput) (*domain.Box, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to update a box")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.BoxUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	}

	var updated *domain.Box
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.strictOwnership {
			if _, err := s.requireOwner(txCtx, actor, input.BoxID, "You do not have permission to update this box"); err != nil {
				return fmt.Errorf("check owner: %w", err)
			}
		}

		var updateErr error
		updated, updateErr = s.boxes.Update(txCtx, input.BoxID, params)
		if updateErr != nil {
			return fmt.Errorf("update box: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardPath, revalidate.BoxPath(updated.ID))

	s.log.InfoContext(ctx, "box updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", updated.ID.String()),
	)

	return updated, nil
}
