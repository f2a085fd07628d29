package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/boxdrop-backend/internal/action"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeResult writes the action envelope with a status derived from its kind.
func writeResult[T any](w http.ResponseWriter, okStatus int, res action.Result[T]) {
	status := okStatus
	if !res.Success {
		status = statusFor(res.Kind)
	}
	writeJSON(w, status, res)
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
