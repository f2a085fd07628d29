package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// CreateSubmission posts an anonymous message into a box. No session is
// needed.
func (s *Service) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &domain.Submission{
		ID:        uuid.New(),
		BoxID:     input.BoxID,
		Message:   input.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *domain.Submission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Token != "" {
			if err := s.checkLink(txCtx, input.Token, input.BoxID); err != nil {
				return err
			}
		}

		var createErr error
		created, createErr = s.submissions.Create(txCtx, sub)
		if errors.Is(createErr, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Box"}
		}
		if createErr != nil {
			return fmt.Errorf("create submission: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revalidate.BoxPath(created.BoxID))

	s.log.InfoContext(ctx, "submission created",
		slog.String("box_id", created.BoxID.String()),
		slog.String("submission_id", created.ID.String()),
	)

	return created, nil
}

// checkLink accepts only an active link that belongs to boxID.
func (s *Service) checkLink(ctx context.Context, token string, boxID uuid.UUID) error {
	link, err := s.links.GetByToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Entity: "Link"}
	}
	if err != nil {
		return fmt.Errorf("get link: %w", err)
	}
	if link.BoxID != boxID {
		return &domain.NotFoundError{Entity: "Link"}
	}
	if !link.IsActive {
		return domain.NewValidationError("token", "Link is inactive")
	}
	return nil
}
