package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/boxdrop-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with its outcome and
// the request-scoped identifiers.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK, ctx: r.Context()}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			// Auth runs inside Logger, so the user id is only visible on the
			// request the handler saw.
			if userID, ok := ctxutil.UserIDFromCtx(sw.ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	ctx         context.Context
}

// observeContext lets inner middleware publish the context it derived.
func observeContext(w http.ResponseWriter, ctx context.Context) {
	if sw, ok := w.(*statusWriter); ok {
		sw.ctx = ctx
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
