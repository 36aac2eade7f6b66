// Package repo contains all database access logic for the Slipway Map API.
// The store keeps each slipway as two parallel records under the same id:
// a coordinate pair in the coordinates table and everything else in the
// details table. Each table has its own file with an interface and a
// Postgres implementation. No business logic lives here — only SQL and
// type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CoordinateRepo defines the persistence operations for the coordinate half
// of a slipway record. Coordinates are stored exactly as the original data
// set held them: an ordered pair of decimal-degree strings. Parsing to
// float happens in the pipeline, where a parse failure is a data-quality
// skip rather than a storage error.
type CoordinateRepo interface {
	// Put writes the coordinate pair for an id, overwriting any existing pair.
	Put(ctx context.Context, id, lat, lng string) error

	// Get retrieves the [lat, lng] pair for an id.
	// Returns domain.ErrNotFound if no pair exists.
	Get(ctx context.Context, id string) ([]string, error)

	// All returns the entire coordinate table keyed by id.
	All(ctx context.Context) (map[string][]string, error)

	// Delete removes the coordinate pair for an id. It is used only as the
	// compensating action when the second write of a create fails; no user
	// path deletes a slipway. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// pgCoordinateRepo is the Postgres implementation of CoordinateRepo.
type pgCoordinateRepo struct {
	db db
}

// NewCoordinateRepo constructs a CoordinateRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCoordinateRepo(db db) CoordinateRepo {
	return &pgCoordinateRepo{db: db}
}

// Put upserts the coordinate pair for an id.
func (r *pgCoordinateRepo) Put(ctx context.Context, id, lat, lng string) error {
	const q = `
		INSERT INTO coordinates (id, lat, lng)
		VALUES (@id, @lat, @lng)
		ON CONFLICT (id) DO UPDATE
		SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, updated_at = now()`

	args := pgx.NamedArgs{"id": id, "lat": lat, "lng": lng}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.CoordinateRepo.Put: %w", err)
	}
	return nil
}

// Get retrieves the [lat, lng] pair for an id.
func (r *pgCoordinateRepo) Get(ctx context.Context, id string) ([]string, error) {
	const q = `SELECT lat, lng FROM coordinates WHERE id = @id`

	var lat, lng string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&lat, &lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.CoordinateRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.CoordinateRepo.Get: %w", err)
	}
	return []string{lat, lng}, nil
}

// All returns every coordinate pair keyed by id.
func (r *pgCoordinateRepo) All(ctx context.Context) (map[string][]string, error) {
	const q = `SELECT id, lat, lng FROM coordinates`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CoordinateRepo.All: %w", err)
	}
	defer rows.Close()

	coords := make(map[string][]string)
	for rows.Next() {
		var id, lat, lng string
		if err := rows.Scan(&id, &lat, &lng); err != nil {
			return nil, fmt.Errorf("repo.CoordinateRepo.All: scan: %w", err)
		}
		coords[id] = []string{lat, lng}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CoordinateRepo.All: rows: %w", err)
	}

	return coords, nil
}

// Delete removes the coordinate pair for an id.
func (r *pgCoordinateRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM coordinates WHERE id = @id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.CoordinateRepo.Delete: %w", err)
	}
	return nil
}
