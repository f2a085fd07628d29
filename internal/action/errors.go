package action

import (
	"errors"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// Message returns the caller-facing text of err. Typed domain errors carry
// their own human-readable message; anything else is reported as is.
func Message(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message()
	}

	var ae *domain.AccessError
	if errors.As(err, &ae) {
		return ae.Error()
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}

	return err.Error()
}
