package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// UpdateSubmission stores the owner's response to a submission.
func (s *Service) UpdateSubmission(ctx context.Context, actor *domain.Actor, input UpdateSubmissionInput) (*domain.Submission, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to respond to submissions")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Submission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.strictOwnership {
			if err := s.requireBoxOwner(txCtx, actor, input); err != nil {
				return err
			}
		}

		var updateErr error
		updated, updateErr = s.submissions.UpdateResponse(txCtx, input.SubmissionID, input.Response)
		if updateErr != nil {
			return fmt.Errorf("update submission: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.DashboardPath)

	s.log.InfoContext(ctx, "submission answered",
		slog.String("user_id", actor.UserID.String()),
		slog.String("submission_id", updated.ID.String()),
	)

	return updated, nil
}

func (s *Service) requireBoxOwner(ctx context.Context, actor *domain.Actor, input UpdateSubmissionInput) error {
	sub, err := s.submissions.GetByID(ctx, input.SubmissionID)
	if err != nil {
		return fmt.Errorf("get submission: %w", err)
	}
	box, err := s.boxes.GetByID(ctx, sub.BoxID)
	if err != nil {
		return fmt.Errorf("get box: %w", err)
	}
	if !box.OwnedBy(actor) {
		return domain.NotOwner("You do not have permission to respond to this submission")
	}
	return nil
}
