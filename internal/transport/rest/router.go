package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/boxdrop-backend/internal/transport/middleware"
)

// RouterDeps collects the handlers and middleware mounted by NewRouter.
type RouterDeps struct {
	Actions *ActionHandler
	Health  *HealthHandler
	Metrics http.Handler
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Auth guards the owner routes; an invalid session is rejected.
	Auth middleware.Middleware
	// OptionalAuth guards the public submission endpoint, where an invalid
	// session falls back to anonymous.
	OptionalAuth middleware.Middleware
	// SubmissionLimit throttles the public submission endpoint. Optional.
	SubmissionLimit middleware.Middleware
}

// NewRouter builds the HTTP routing table.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range d.Global {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	a := d.Actions
	owner := middleware.Chain(d.Auth)
	public := middleware.Chain(d.SubmissionLimit, d.OptionalAuth)

	r.Route("/boxes", func(r chi.Router) {
		r.With(public).Post("/{boxID}/submissions", a.CreateSubmission)
		r.Group(func(r chi.Router) {
			r.Use(owner)
			r.Post("/", a.CreateBox)
			r.Get("/", a.ListBoxes)
			r.Get("/{boxID}", a.GetBoxDetail)
			r.Put("/{boxID}", a.UpdateBox)
			r.Delete("/{boxID}", a.DeleteBox)
		})
	})
	r.Group(func(r chi.Router) {
		r.Use(owner)
		r.Put("/submissions/{submissionID}", a.UpdateSubmission)
		r.Route("/links", func(r chi.Router) {
			r.Post("/", a.GenerateLink)
			r.Post("/{token}/toggle", a.ToggleLinkStatus)
			r.Delete("/{token}", a.DeleteLink)
		})
	})

	return r
}
