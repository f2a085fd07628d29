// Package action is the Action Gateway: it turns form posts into service
// calls and every outcome, including panics, into a Result envelope.
package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
	"github.com/heartmarshall/boxdrop-backend/internal/service/box"
	"github.com/heartmarshall/boxdrop-backend/internal/service/link"
	"github.com/heartmarshall/boxdrop-backend/internal/service/submission"
)

// Form is a key-value form payload. url.Values satisfies it.
type Form interface {
	Get(key string) string
}

// Form field names.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldMessage     = "message"
	FieldBoxID       = "boxId"
	FieldResponse    = "response"
	FieldToken       = "token"
)

type boxService interface {
	CreateBox(ctx context.Context, actor *domain.Actor, input box.CreateBoxInput) (*domain.Box, error)
	UpdateBox(ctx context.Context, actor *domain.Actor, input box.UpdateBoxInput) (*domain.Box, error)
	DeleteBox(ctx context.Context, actor *domain.Actor, input box.DeleteBoxInput) (*domain.Box, error)
	ListBoxes(ctx context.Context, actor *domain.Actor) ([]*domain.Box, error)
	GetBoxDetail(ctx context.Context, actor *domain.Actor, input box.GetBoxDetailInput) (*domain.BoxDetail, error)
}

type submissionService interface {
	CreateSubmission(ctx context.Context, input submission.CreateSubmissionInput) (*domain.Submission, error)
	UpdateSubmission(ctx context.Context, actor *domain.Actor, input submission.UpdateSubmissionInput) (*domain.Submission, error)
}

type linkService interface {
	GenerateLink(ctx context.Context, actor *domain.Actor, input link.GenerateLinkInput) (*domain.Link, error)
	ToggleLinkStatus(ctx context.Context, actor *domain.Actor, input link.TokenInput) (*domain.Link, error)
	DeleteLink(ctx context.Context, actor *domain.Actor, input link.TokenInput) (*domain.Link, error)
}

// Gateway exposes one method per form action.
type Gateway struct {
	boxes       boxService
	submissions submissionService
	links       linkService
	metrics     *Metrics
	log         *slog.Logger
}

// NewGateway creates a Gateway. metrics may be nil.
func NewGateway(
	log *slog.Logger,
	boxes boxService,
	submissions submissionService,
	links linkService,
	metrics *Metrics,
) *Gateway {
	return &Gateway{
		boxes:       boxes,
		submissions: submissions,
		links:       links,
		metrics:     metrics,
		log:         log.With("component", "action"),
	}
}

// ---------------------------------------------------------------------------
// Boxes
// ---------------------------------------------------------------------------

// CreateBox handles the new-box form.
func (g *Gateway) CreateBox(ctx context.Context, actor *domain.Actor, form Form) Result[*Box] {
	return run(ctx, g, "create_box", toBox, func() (*domain.Box, error) {
		return g.boxes.CreateBox(ctx, actor, box.CreateBoxInput{
			Name:        form.Get(FieldName),
			Description: form.Get(FieldDescription),
		})
	})
}

// UpdateBox handles the edit-box form for boxID.
func (g *Gateway) UpdateBox(ctx context.Context, actor *domain.Actor, boxID string, form Form) Result[*Box] {
	return run(ctx, g, "update_box", toBox, func() (*domain.Box, error) {
		return g.boxes.UpdateBox(ctx, actor, box.UpdateBoxInput{
			BoxID:       parseID(boxID),
			Name:        form.Get(FieldName),
			Description: form.Get(FieldDescription),
		})
	})
}

// DeleteBox deletes boxID.
func (g *Gateway) DeleteBox(ctx context.Context, actor *domain.Actor, boxID string) Result[*Box] {
	return run(ctx, g, "delete_box", toBox, func() (*domain.Box, error) {
		return g.boxes.DeleteBox(ctx, actor, box.DeleteBoxInput{BoxID: parseID(boxID)})
	})
}

// ListBoxes returns the actor's boxes.
func (g *Gateway) ListBoxes(ctx context.Context, actor *domain.Actor) Result[[]*Box] {
	return run(ctx, g, "list_boxes", toBoxes, func() ([]*domain.Box, error) {
		return g.boxes.ListBoxes(ctx, actor)
	})
}

// GetBoxDetail returns boxID with its links and submissions.
func (g *Gateway) GetBoxDetail(ctx context.Context, actor *domain.Actor, boxID string) Result[*BoxDetail] {
	return run(ctx, g, "get_box_detail", toBoxDetail, func() (*domain.BoxDetail, error) {
		return g.boxes.GetBoxDetail(ctx, actor, box.GetBoxDetailInput{BoxID: parseID(boxID)})
	})
}

// ---------------------------------------------------------------------------
// Submissions
// ---------------------------------------------------------------------------

// CreateSubmission posts form into boxID. The actor is ignored: submissions
// are anonymous. An empty boxID falls back to the boxId form field.
func (g *Gateway) CreateSubmission(ctx context.Context, _ *domain.Actor, boxID string, form Form) Result[*Submission] {
	if boxID == "" {
		boxID = form.Get(FieldBoxID)
	}
	return run(ctx, g, "create_submission", toSubmission, func() (*domain.Submission, error) {
		return g.submissions.CreateSubmission(ctx, submission.CreateSubmissionInput{
			BoxID:   parseID(boxID),
			Message: form.Get(FieldMessage),
			Token:   strings.TrimSpace(form.Get(FieldToken)),
		})
	})
}

// UpdateSubmission stores the owner's response to submissionID.
func (g *Gateway) UpdateSubmission(ctx context.Context, actor *domain.Actor, submissionID string, form Form) Result[*Submission] {
	return run(ctx, g, "update_submission", toSubmission, func() (*domain.Submission, error) {
		return g.submissions.UpdateSubmission(ctx, actor, submission.UpdateSubmissionInput{
			SubmissionID: parseID(submissionID),
			Response:     form.Get(FieldResponse),
		})
	})
}

// ---------------------------------------------------------------------------
// Links
// ---------------------------------------------------------------------------

// GenerateLink creates a link for the box named by the boxId form field.
func (g *Gateway) GenerateLink(ctx context.Context, actor *domain.Actor, form Form) Result[*Link] {
	return run(ctx, g, "generate_link", toLink, func() (*domain.Link, error) {
		return g.links.GenerateLink(ctx, actor, link.GenerateLinkInput{BoxID: parseID(form.Get(FieldBoxID))})
	})
}

// ToggleLinkStatus flips the active flag of token.
func (g *Gateway) ToggleLinkStatus(ctx context.Context, actor *domain.Actor, token string) Result[*Link] {
	return run(ctx, g, "toggle_link_status", toLink, func() (*domain.Link, error) {
		return g.links.ToggleLinkStatus(ctx, actor, link.TokenInput{Token: token})
	})
}

// DeleteLink removes token.
func (g *Gateway) DeleteLink(ctx context.Context, actor *domain.Actor, token string) Result[*Link] {
	return run(ctx, g, "delete_link", toLink, func() (*domain.Link, error) {
		return g.links.DeleteLink(ctx, actor, link.TokenInput{Token: token})
	})
}

// ---------------------------------------------------------------------------
// Plumbing
// ---------------------------------------------------------------------------

// run executes fn and converts its outcome into a Result. A panic in fn is
// reported as a persistence failure.
func run[T, V any](ctx context.Context, g *Gateway, name string, view func(T) V, fn func() (T, error)) (res Result[V]) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			g.log.ErrorContext(ctx, "action panicked",
				slog.String("action", name),
				slog.Any("panic", r),
			)
			res = Fail[V](fmt.Errorf("internal error"))
		}

		outcome := "success"
		if !res.Success {
			outcome = res.Kind.String()
		}
		g.metrics.observe(name, outcome, time.Since(start))
	}()

	data, err := fn()
	if err != nil {
		g.logFailure(ctx, name, err)
		return Fail[V](err)
	}

	return Ok(view(data))
}

func (g *Gateway) logFailure(ctx context.Context, name string, err error) {
	kind := domain.KindOf(err)
	attrs := []any{
		slog.String("action", name),
		slog.String("kind", kind.String()),
		slog.String("error", err.Error()),
	}
	if kind == domain.KindPersistence {
		g.log.ErrorContext(ctx, "action failed", attrs...)
		return
	}
	g.log.WarnContext(ctx, "action rejected", attrs...)
}

// parseID returns uuid.Nil for anything that is not a UUID, so a malformed
// id fails validation exactly like a missing one.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}
