package auth

import (
	"context"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/pkg/ctxutil"
)

// Sessions turns the identity placed in the request context by the auth
// middleware into the explicit actor passed to every action.
type Sessions struct{}

// Actor returns the caller's actor, or nil for an anonymous request.
func (Sessions) Actor(ctx context.Context) *domain.Actor {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return domain.NewActor(userID)
}
