package action

import (
	"encoding/json"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// Result is the envelope every action returns. Exactly one of Data or
// Error is meaningful, selected by Success.
type Result[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Error   string           `json:"error,omitempty"`
	Kind    domain.ErrorKind `json:"kind,omitempty"`
}

// MarshalJSON emits data on success, even an empty list, and never on
// failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Data    T    `json:"data"`
		}{Success: true, Data: r.Data})
	}
	return json.Marshal(struct {
		Success bool             `json:"success"`
		Error   string           `json:"error,omitempty"`
		Kind    domain.ErrorKind `json:"kind,omitempty"`
	}{Error: r.Error, Kind: r.Kind})
}

// Ok wraps data in a successful envelope.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failed envelope from err.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		Success: false,
		Error:   Message(err),
		Kind:    domain.KindOf(err),
	}
}
