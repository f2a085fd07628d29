//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/boxdrop-backend/internal/app"
	authpkg "github.com/heartmarshall/boxdrop-backend/internal/auth"
	"github.com/heartmarshall/boxdrop-backend/internal/config"
	"github.com/heartmarshall/boxdrop-backend/internal/revalidate"
	"github.com/heartmarshall/boxdrop-backend/internal/transport/middleware"
	"github.com/heartmarshall/boxdrop-backend/internal/transport/rest"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// envelope mirrors the action result JSON.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Kind    string          `json:"kind"`
}

// pathRecorder is a revalidate sink remembering every invalidated path.
type pathRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *pathRecorder) Invalidate(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

// take returns and clears the recorded paths.
func (r *pathRecorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.paths
	r.paths = nil
	return out
}

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Paths    *pathRecorder
	jwt      *authpkg.JWTManager
	Registry *prometheus.Registry
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOption func(*config.Config)

func strictOwnership(cfg *config.Config) { cfg.Actions.StrictOwnership = true }

func submissionLimit(n int) serverOption {
	return func(cfg *config.Config) { cfg.RateLimit.SubmissionsPerMinute = n }
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		RateLimit: config.RateLimitConfig{SubmissionsPerMinute: 1000, CleanupInterval: time.Minute},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	paths := &pathRecorder{}
	registry := prometheus.NewRegistry()

	handler := app.NewHandler(cfg, logger, app.Deps{
		Pool:     pool,
		Sinks:    []revalidate.Sink{paths},
		Health:   []rest.Component{{Name: "database", Pinger: pool}},
		Registry: registry,
		Limiter:  limiter,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Paths:    paths,
		jwt:      authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
		Registry: registry,
	}
}

// newUser returns a fresh user id and a bearer token for it.
func (ts *testServer) newUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)
	return id, token
}

// do sends a form request and decodes the envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, form url.Values) (int, envelope) {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

// data decodes the envelope payload into a generic map.
func data(t *testing.T, env envelope) map[string]any {
	t.Helper()
	require.True(t, env.Success, "expected success, got %q (%s)", env.Error, env.Kind)
	var m map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

// createBox creates a box through the API and returns its id.
func (ts *testServer) createBox(t *testing.T, token, name string) string {
	t.Helper()
	status, env := ts.do(t, http.MethodPost, "/boxes", token, url.Values{
		"name":        {name},
		"description": {"description of " + name},
	})
	require.Equal(t, http.StatusCreated, status)
	id, ok := data(t, env)["id"].(string)
	require.True(t, ok, "expected box id")
	return id
}

// generateLink creates a link for boxID and returns its token.
func (ts *testServer) generateLink(t *testing.T, token, boxID string) string {
	t.Helper()
	status, env := ts.do(t, http.MethodPost, "/links", token, url.Values{"boxId": {boxID}})
	require.Equal(t, http.StatusCreated, status)
	tok, ok := data(t, env)["token"].(string)
	require.True(t, ok, "expected link token")
	return tok
}
