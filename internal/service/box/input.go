package box

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

const (
	msgNameAndDescription = "Name and description are required"
	msgBoxID              = "Box ID is required"
)

// CreateBoxInput holds the form fields of a new box.
type CreateBoxInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateBoxInput) Validate() error {
	return validateFields(uuid.Nil, false, i.Name, i.Description)
}

// UpdateBoxInput holds the replacement fields of a box.
type UpdateBoxInput struct {
	BoxID       uuid.UUID
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i UpdateBoxInput) Validate() error {
	return validateFields(i.BoxID, true, i.Name, i.Description)
}

// DeleteBoxInput identifies the box to delete.
type DeleteBoxInput struct {
	BoxID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteBoxInput) Validate() error {
	if i.BoxID == uuid.Nil {
		return domain.NewValidationError("box_id", msgBoxID)
	}
	return nil
}

// GetBoxDetailInput identifies the box to show on the dashboard.
type GetBoxDetailInput struct {
	BoxID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetBoxDetailInput) Validate() error {
	if i.BoxID == uuid.Nil {
		return domain.NewValidationError("box_id", msgBoxID)
	}
	return nil
}

func validateFields(boxID uuid.UUID, needID bool, name, description string) error {
	var errs []domain.FieldError

	if needID && boxID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "box_id", Message: msgBoxID})
	}
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: msgNameAndDescription})
	}
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: msgNameAndDescription})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
