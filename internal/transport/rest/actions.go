package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/boxdrop-backend/internal/action"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

const (
	maxFormBytes  = 1 << 20
	maxFormMemory = 1 << 20
)

type actionGateway interface {
	CreateBox(ctx context.Context, actor *domain.Actor, form action.Form) action.Result[*action.Box]
	UpdateBox(ctx context.Context, actor *domain.Actor, boxID string, form action.Form) action.Result[*action.Box]
	DeleteBox(ctx context.Context, actor *domain.Actor, boxID string) action.Result[*action.Box]
	ListBoxes(ctx context.Context, actor *domain.Actor) action.Result[[]*action.Box]
	GetBoxDetail(ctx context.Context, actor *domain.Actor, boxID string) action.Result[*action.BoxDetail]
	CreateSubmission(ctx context.Context, actor *domain.Actor, boxID string, form action.Form) action.Result[*action.Submission]
	UpdateSubmission(ctx context.Context, actor *domain.Actor, submissionID string, form action.Form) action.Result[*action.Submission]
	GenerateLink(ctx context.Context, actor *domain.Actor, form action.Form) action.Result[*action.Link]
	ToggleLinkStatus(ctx context.Context, actor *domain.Actor, token string) action.Result[*action.Link]
	DeleteLink(ctx context.Context, actor *domain.Actor, token string) action.Result[*action.Link]
}

type actorSource interface {
	Actor(ctx context.Context) *domain.Actor
}

// ActionHandler maps form posts onto gateway actions.
type ActionHandler struct {
	gw       actionGateway
	sessions actorSource
	log      *slog.Logger
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(gw actionGateway, sessions actorSource, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{gw: gw, sessions: sessions, log: logger.With("handler", "actions")}
}

func (h *ActionHandler) CreateBox(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	writeResult(w, http.StatusCreated, h.gw.CreateBox(r.Context(), h.actor(r), form))
}

func (h *ActionHandler) ListBoxes(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.gw.ListBoxes(r.Context(), h.actor(r)))
}

func (h *ActionHandler) GetBoxDetail(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.gw.GetBoxDetail(r.Context(), h.actor(r), chi.URLParam(r, "boxID")))
}

func (h *ActionHandler) UpdateBox(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	writeResult(w, http.StatusOK, h.gw.UpdateBox(r.Context(), h.actor(r), chi.URLParam(r, "boxID"), form))
}

func (h *ActionHandler) DeleteBox(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.gw.DeleteBox(r.Context(), h.actor(r), chi.URLParam(r, "boxID")))
}

func (h *ActionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	writeResult(w, http.StatusCreated, h.gw.CreateSubmission(r.Context(), h.actor(r), chi.URLParam(r, "boxID"), form))
}

func (h *ActionHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	writeResult(w, http.StatusOK, h.gw.UpdateSubmission(r.Context(), h.actor(r), chi.URLParam(r, "submissionID"), form))
}

func (h *ActionHandler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	writeResult(w, http.StatusCreated, h.gw.GenerateLink(r.Context(), h.actor(r), form))
}

func (h *ActionHandler) ToggleLinkStatus(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.gw.ToggleLinkStatus(r.Context(), h.actor(r), chi.URLParam(r, "token")))
}

func (h *ActionHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.gw.DeleteLink(r.Context(), h.actor(r), chi.URLParam(r, "token")))
}

func (h *ActionHandler) actor(r *http.Request) *domain.Actor {
	return h.sessions.Actor(r.Context())
}

// parseForm reads a urlencoded or multipart body. On failure the
// validation envelope has already been written.
func (h *ActionHandler) parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var err error
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		h.log.WarnContext(r.Context(), "invalid form payload",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeResult(w, http.StatusOK, action.Fail[any](domain.NewValidationError("form", "Invalid form payload")))
		return nil, false
	}
	return r.PostForm, true
}
