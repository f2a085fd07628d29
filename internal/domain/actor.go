package domain

import "github.com/google/uuid"

// Actor is the resolved session of the caller. A nil *Actor is anonymous.
type Actor struct {
	UserID uuid.UUID
}

// NewActor returns nil for uuid.Nil so an empty identity is never mistaken
// for a session.
func NewActor(userID uuid.UUID) *Actor {
	if userID == uuid.Nil {
		return nil
	}
	return &Actor{UserID: userID}
}

// Authenticated reports whether the actor carries a user id.
func (a *Actor) Authenticated() bool {
	return a != nil && a.UserID != uuid.Nil
}
