// Package link implements the Link repository using PostgreSQL.
package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/boxdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

const entity = "link"

var (
	columns   = []string{"token", "box_id", "is_active", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByToken returns the link with the given token.
// Returns domain.ErrNotFound if no such link exists.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.Link, error) {
	q := postgres.Builder().
		Select(columns...).
		From("links").
		Where(sq.Eq{"token": token})

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	l, err := scanLink(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, token)
	}
	return l, nil
}

// ListByBox returns the links of a box, newest first.
func (r *Repo) ListByBox(ctx context.Context, boxID uuid.UUID) ([]*domain.Link, error) {
	q := postgres.Builder().
		Select(columns...).
		From("links").
		Where(sq.Eq{"box_id": boxID}).
		OrderBy("created_at DESC", "token")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

// Create inserts a new link. A token collision surfaces as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l *domain.Link) (*domain.Link, error) {
	q := postgres.Builder().
		Insert("links").
		Columns(columns...).
		Values(l.Token, l.BoxID, l.IsActive, l.CreatedAt, l.UpdatedAt).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	created, err := scanLink(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, l.Token)
	}
	return created, nil
}

// Toggle flips is_active on a link in a single statement, so concurrent
// toggles serialize on the row lock and none is lost.
// Returns domain.ErrNotFound if the link does not exist.
func (r *Repo) Toggle(ctx context.Context, token string) (*domain.Link, error) {
	q := postgres.Builder().
		Update("links").
		Set("is_active", sq.Expr("NOT is_active")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"token": token}).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	updated, err := scanLink(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, token)
	}
	return updated, nil
}

// Delete removes a link and returns the deleted row.
// Returns domain.ErrNotFound if the link does not exist.
func (r *Repo) Delete(ctx context.Context, token string) (*domain.Link, error) {
	q := postgres.Builder().
		Delete("links").
		Where(sq.Eq{"token": token}).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	deleted, err := scanLink(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, token)
	}
	return deleted, nil
}

func scanLink(row pgx.Row) (*domain.Link, error) {
	var l domain.Link
	if err := row.Scan(&l.Token, &l.BoxID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
