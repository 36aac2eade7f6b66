package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// DetailRepo defines the persistence operations for the detail half of a
// slipway record. Writes always overwrite the whole record — the original
// client read-then-rewrote the full detail document on every save, and the
// service layer preserves that last-writer-wins behavior.
//
// There is deliberately no Delete: no specified path removes a slipway.
type DetailRepo interface {
	// Put writes the full detail record for an id, overwriting any existing one.
	Put(ctx context.Context, id string, d domain.Detail) error

	// Get retrieves the detail record for an id.
	// Returns domain.ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (domain.Detail, error)

	// All returns the entire detail table keyed by id.
	All(ctx context.Context) (map[string]domain.Detail, error)
}

// pgDetailRepo is the Postgres implementation of DetailRepo.
type pgDetailRepo struct {
	db db
}

// NewDetailRepo constructs a DetailRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDetailRepo(db db) DetailRepo {
	return &pgDetailRepo{db: db}
}

// Put upserts the full detail record for an id.
func (r *pgDetailRepo) Put(ctx context.Context, id string, d domain.Detail) error {
	const q = `
		INSERT INTO details (
			id, name, description, ramp_description, facilities, charges,
			nearest_place, ramp_type, suitability, ramp_length, upper_area,
			lower_area, directions, email, mobile_phone_number,
			navigational_hazards, website, imgs, comments
		)
		VALUES (
			@id, @name, @description, @ramp_description, @facilities, @charges,
			@nearest_place, @ramp_type, @suitability, @ramp_length, @upper_area,
			@lower_area, @directions, @email, @mobile_phone_number,
			@navigational_hazards, @website, @imgs, @comments
		)
		ON CONFLICT (id) DO UPDATE SET
			name                 = EXCLUDED.name,
			description          = EXCLUDED.description,
			ramp_description     = EXCLUDED.ramp_description,
			facilities           = EXCLUDED.facilities,
			charges              = EXCLUDED.charges,
			nearest_place        = EXCLUDED.nearest_place,
			ramp_type            = EXCLUDED.ramp_type,
			suitability          = EXCLUDED.suitability,
			ramp_length          = EXCLUDED.ramp_length,
			upper_area           = EXCLUDED.upper_area,
			lower_area           = EXCLUDED.lower_area,
			directions           = EXCLUDED.directions,
			email                = EXCLUDED.email,
			mobile_phone_number  = EXCLUDED.mobile_phone_number,
			navigational_hazards = EXCLUDED.navigational_hazards,
			website              = EXCLUDED.website,
			imgs                 = EXCLUDED.imgs,
			comments             = EXCLUDED.comments,
			updated_at           = now()`

	imgs := d.Imgs
	if imgs == nil {
		imgs = []string{}
	}
	commentsJSON, err := json.Marshal(d.Comments)
	if err != nil {
		return fmt.Errorf("repo.DetailRepo.Put: marshal comments: %w", err)
	}

	args := pgx.NamedArgs{
		"id":                   id,
		"name":                 d.Name,
		"description":          d.Description,
		"ramp_description":     d.RampDescription,
		"facilities":           d.Facilities,
		"charges":              d.Charges,
		"nearest_place":        d.NearestPlace,
		"ramp_type":            d.RampType,
		"suitability":          d.Suitability,
		"ramp_length":          d.RampLength,
		"upper_area":           d.UpperArea,
		"lower_area":           d.LowerArea,
		"directions":           d.Directions,
		"email":                d.Email,
		"mobile_phone_number":  d.MobilePhoneNumber,
		"navigational_hazards": d.NavigationalHazards,
		"website":              d.Website,
		"imgs":                 imgs,
		"comments":             string(commentsJSON),
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.DetailRepo.Put: %w", err)
	}
	return nil
}

// Get retrieves the detail record for an id.
func (r *pgDetailRepo) Get(ctx context.Context, id string) (domain.Detail, error) {
	const q = detailColumns + ` WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	_, d, err := scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Detail{}, fmt.Errorf("repo.DetailRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Detail{}, fmt.Errorf("repo.DetailRepo.Get: %w", err)
	}
	return d, nil
}

// All returns every detail record keyed by id.
func (r *pgDetailRepo) All(ctx context.Context) (map[string]domain.Detail, error) {
	const q = detailColumns

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DetailRepo.All: %w", err)
	}
	defer rows.Close()

	details := make(map[string]domain.Detail)
	for rows.Next() {
		id, d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DetailRepo.All: scan: %w", err)
		}
		details[id] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DetailRepo.All: rows: %w", err)
	}

	return details, nil
}

// detailColumns is the shared SELECT prefix for detail queries, kept in one
// place so scanDetail and the queries can never drift out of column order.
const detailColumns = `
	SELECT id, name, description, ramp_description, facilities, charges,
	       nearest_place, ramp_type, suitability, ramp_length, upper_area,
	       lower_area, directions, email, mobile_phone_number,
	       navigational_hazards, website, imgs, comments
	FROM details`

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanDetail to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanDetail maps a single database row into an id and a domain.Detail.
// The comments column is jsonb and scans through encoding/json.
func scanDetail(s scanner) (string, domain.Detail, error) {
	var (
		id           string
		d            domain.Detail
		commentsJSON []byte
	)
	err := s.Scan(
		&id, &d.Name, &d.Description, &d.RampDescription, &d.Facilities,
		&d.Charges, &d.NearestPlace, &d.RampType, &d.Suitability,
		&d.RampLength, &d.UpperArea, &d.LowerArea, &d.Directions, &d.Email,
		&d.MobilePhoneNumber, &d.NavigationalHazards, &d.Website, &d.Imgs,
		&commentsJSON,
	)
	if err != nil {
		return "", domain.Detail{}, err
	}
	if len(commentsJSON) > 0 {
		if err := json.Unmarshal(commentsJSON, &d.Comments); err != nil {
			return "", domain.Detail{}, fmt.Errorf("unmarshal comments: %w", err)
		}
	}
	return id, d, nil
}
