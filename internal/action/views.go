package action

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// Box is the JSON shape of a box.
type Box struct {
	ID          uuid.UUID `json:"id"`
	AdminID     uuid.UUID `json:"adminId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Submission is the JSON shape of a submission.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	BoxID     uuid.UUID `json:"boxId"`
	Message   string    `json:"message"`
	Response  *string   `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Link is the JSON shape of a link.
type Link struct {
	Token     string    `json:"token"`
	BoxID     uuid.UUID `json:"boxId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoxDetail is the owner's view of one box.
type BoxDetail struct {
	Box
	Links       []*Link       `json:"links"`
	Submissions []*Submission `json:"submissions"`
}

func toBox(b *domain.Box) *Box {
	return &Box{
		ID:          b.ID,
		AdminID:     b.AdminID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBoxes(bs []*domain.Box) []*Box {
	out := make([]*Box, len(bs))
	for i, b := range bs {
		out[i] = toBox(b)
	}
	return out
}

func toSubmission(s *domain.Submission) *Submission {
	return &Submission{
		ID:        s.ID,
		BoxID:     s.BoxID,
		Message:   s.Message,
		Response:  s.Response,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toLink(l *domain.Link) *Link {
	return &Link{
		Token:     l.Token,
		BoxID:     l.BoxID,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toBoxDetail(d *domain.BoxDetail) *BoxDetail {
	out := &BoxDetail{
		Box:         *toBox(&d.Box),
		Links:       make([]*Link, len(d.Links)),
		Submissions: make([]*Submission, len(d.Submissions)),
	}
	for i, l := range d.Links {
		out.Links[i] = toLink(l)
	}
	for i, s := range d.Submissions {
		out.Submissions[i] = toSubmission(s)
	}
	return out
}
