// Package box implements the Box repository using PostgreSQL.
package box

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

const entity = "box"

var (
	columns   = []string{"id", "admin_id", "name", "description", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides box persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new box repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a box by primary key regardless of owner.
// Returns domain.ErrNotFound if the box does not exist.
func (r *Repo) GetByID(ctx context.Context, boxID uuid.UUID) (*domain.Box, error) {
	q := postgres.Builder().
		Select(columns...).
		From("boxes").
		Where(sq.Eq{"id": boxID})

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	b, err := scanBox(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, boxID)
	}
	return b, nil
}

// ListByAdmin returns the admin's boxes, newest first. Returns an empty
// slice if the admin owns nothing.
func (r *Repo) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Box, error) {
	q := postgres.Builder().
		Select(columns...).
		From("boxes").
		Where(sq.Eq{"admin_id": adminID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	defer rows.Close()

	boxes := make([]*domain.Box, 0)
	for rows.Next() {
		b, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		boxes = append(boxes, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}

	return boxes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new box and returns the persisted row.
func (r *Repo) Create(ctx context.Context, b *domain.Box) (*domain.Box, error) {
	q := postgres.Builder().
		Insert("boxes").
		Columns(columns...).
		Values(b.ID, b.AdminID, b.Name, b.Description, b.CreatedAt, b.UpdatedAt).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	created, err := scanBox(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, b.ID)
	}
	return created, nil
}

// Update replaces name and description of a box and bumps updated_at.
// Returns domain.ErrNotFound if the box does not exist.
func (r *Repo) Update(ctx context.Context, boxID uuid.UUID, params domain.BoxUpdateParams) (*domain.Box, error) {
	q := postgres.Builder().
		Update("boxes").
		Set("name", params.Name).
		Set("description", params.Description).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": boxID}).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	updated, err := scanBox(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, boxID)
	}
	return updated, nil
}

// Delete removes a box and returns the deleted row. Submissions and links
// go with it through ON DELETE CASCADE.
// Returns domain.ErrNotFound if the box does not exist.
func (r *Repo) Delete(ctx context.Context, boxID uuid.UUID) (*domain.Box, error) {
	q := postgres.Builder().
		Delete("boxes").
		Where(sq.Eq{"id": boxID}).
		Suffix(returning)

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, err
	}

	deleted, err := scanBox(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, boxID)
	}
	return deleted, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanBox(row pgx.Row) (*domain.Box, error) {
	var b domain.Box
	if err := row.Scan(&b.ID, &b.AdminID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
