package link

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// GenerateLinkInput names the box to create a link for.
type GenerateLinkInput struct {
	BoxID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GenerateLinkInput) Validate() error {
	if i.BoxID == uuid.Nil {
		return domain.NewValidationError("box_id", "Box ID is required")
	}
	return nil
}

// TokenInput identifies an existing link.
type TokenInput struct {
	Token string
}

// Validate checks all fields and collects all errors.
func (i TokenInput) Validate() error {
	if strings.TrimSpace(i.Token) == "" {
		return domain.NewValidationError("token", "Link token is required")
	}
	return nil
}
