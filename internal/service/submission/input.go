package submission

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

const (
	msgMessageAndBox = "Message and box ID are required"
	msgResponse      = "Response is required"
	msgSubmissionID  = "Submission ID is required"
)

// CreateSubmissionInput holds an anonymous submission. Token is optional;
// when set, it must name an active link of the same box.
type CreateSubmissionInput struct {
	BoxID   uuid.UUID
	Message string
	Token   string
}

// Validate checks all fields and collects all errors.
func (i CreateSubmissionInput) Validate() error {
	var errs []domain.FieldError

	if i.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: msgMessageAndBox})
	}
	if i.BoxID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "box_id", Message: msgMessageAndBox})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSubmissionInput holds the owner's response to a submission.
type UpdateSubmissionInput struct {
	SubmissionID uuid.UUID
	Response     string
}

// Validate checks all fields and collects all errors.
func (i UpdateSubmissionInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: msgSubmissionID})
	}
	if i.Response == "" {
		errs = append(errs, domain.FieldError{Field: "response", Message: msgResponse})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
