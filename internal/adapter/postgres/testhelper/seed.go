package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/boxdrop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedBox inserts a box owned by adminID.
func SeedBox(t *testing.T, pool *pgxpool.Pool, adminID uuid.UUID) domain.Box {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	box := domain.Box{
		ID:          uuid.New(),
		AdminID:     adminID,
		Name:        "Box " + suffix,
		Description: "Seeded box " + suffix,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO boxes (id, admin_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		box.ID, box.AdminID, box.Name, box.Description, box.CreatedAt, box.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBox: %v", err)
	}

	return box
}

// SeedSubmission inserts an unanswered submission into boxID.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, boxID uuid.UUID, message string) domain.Submission {
	t.Helper()

	ts := now()
	sub := domain.Submission{
		ID:        uuid.New(),
		BoxID:     boxID,
		Message:   message,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions (id, box_id, message, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.BoxID, sub.Message, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}

	return sub
}

// SeedLink inserts a link for boxID with the given status.
func SeedLink(t *testing.T, pool *pgxpool.Pool, boxID uuid.UUID, active bool) domain.Link {
	t.Helper()

	ts := now()
	link := domain.Link{
		Token:     "tok-" + uuid.New().String(),
		BoxID:     boxID,
		IsActive:  active,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO links (token, box_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		link.Token, link.BoxID, link.IsActive, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return link
}
