package box

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
)

// CreateBox creates a box owned by the actor.
func (s *Service) CreateBox(ctx context.Context, actor *domain.Actor, input CreateBoxInput) (*domain.Box, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated("Must be logged in to create a box")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.boxes.Create(ctx, &domain.Box{
		ID:          uuid.New(),
		AdminID:     actor.UserID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create box: %w", err)
	}

	s.notifier.Notify(ctx, revalidate.DashboardPath)

	s.log.InfoContext(ctx, "box created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("box_id", created.ID.String()),
	)

	return created, nil
}
