// Package submission implements the Submission repository using PostgreSQL.
package submission

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

const entity = "submission"

var (
	columns   = []string{"id", "box_id", "message", "response", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a submission by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	q := postgres.Builder().
		Select(columns...).
		From("submissions").
		Where(sq.Eq{"id": submissionID})

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	s, err := scanSubmission(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, submissionID)
	}
	return s, nil
}

// ListByBox returns the submissions of a box, newest first.
func (r *Repo) ListByBox(ctx context.Context, boxID uuid.UUID) ([]*domain.Submission, error) {
	q := postgres.Builder().
		Select(columns...).
		From("submissions").
		Where(sq.Eq{"box_id": boxID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return subs, nil
}

// Create inserts a new submission. A missing parent box surfaces as
// domain.ErrNotFound through the foreign key.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	q := postgres.Builder().
		Insert("submissions").
		Columns(columns...).
		Values(s.ID, s.BoxID, s.Message, s.Response, s.CreatedAt, s.UpdatedAt).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	created, err := scanSubmission(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, s.ID)
	}
	return created, nil
}

// UpdateResponse sets the owner's response on a submission.
// Returns domain.ErrNotFound if the submission does not exist.
func (r *Repo) UpdateResponse(ctx context.Context, submissionID uuid.UUID, response string) (*domain.Submission, error) {
	q := postgres.Builder().
		Update("submissions").
		Set("response", response).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": submissionID}).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	updated, err := scanSubmission(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, submissionID)
	}
	return updated, nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var (
		s        domain.Submission
		response pgtype.Text
	)
	if err := row.Scan(&s.ID, &s.BoxID, &s.Message, &response, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if response.Valid {
		v := response.String
		s.Response = &v
	}
	return &s, nil
}
