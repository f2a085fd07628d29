package domain

import (
	"time"

	"github.com/google/uuid"
)

// Box is a named collection point owned by a user. Anonymous visitors
// post submissions into it.
type Box struct {
	ID          uuid.UUID
	AdminID     uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the actor is the box admin.
func (b *Box) OwnedBy(actor *Actor) bool {
	return b != nil && actor != nil && b.AdminID == actor.UserID
}

// BoxUpdateParams holds the fields replaced by an update.
type BoxUpdateParams struct {
	Name        string
	Description string
}

// Submission is an anonymous message posted into a box, optionally
// answered by the box owner.
type Submission struct {
	ID        uuid.UUID
	BoxID     uuid.UUID
	Message   string
	Response  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Link is a shareable token that grants access to submit into a box.
type Link struct {
	Token     string
	BoxID     uuid.UUID
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoxDetail is the owner's dashboard view of a single box.
type BoxDetail struct {
	Box         Box
	Links       []*Link
	Submissions []*Submission
}
