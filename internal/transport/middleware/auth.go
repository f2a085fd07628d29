package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// invalidSessionBody is the action envelope for a rejected bearer token.
const invalidSessionBody = `{"success":false,"error":"Unauthorized: Invalid or expired session","kind":"UNAUTHORIZED"}` + "\n"

// Auth resolves the bearer token into a user id on the request context.
// Requests without a token continue anonymously; a token that fails
// validation is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return auth(validator, true)
}

// OptionalAuth is Auth for routes that need no session. A token that fails
// validation is dropped and the request continues anonymously.
func OptionalAuth(validator tokenValidator) Middleware {
	return auth(validator, false)
}

func auth(validator tokenValidator, rejectInvalid bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if !rejectInvalid {
					next.ServeHTTP(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(invalidSessionBody))
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			observeContext(w, ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
