// Package service contains the business logic for the Slipway Map API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/boatlaunch/slipway-map/internal/domain"
	"github.com/boatlaunch/slipway-map/internal/pipeline"
	"github.com/boatlaunch/slipway-map/internal/repo"
)

// SlipwayService implements the entity editor and the marker listing.
// It owns the split-record layout: every slipway is a coordinate pair in
// one table and a detail record in the other, always under the same id.
type SlipwayService struct {
	coords  repo.CoordinateRepo
	details repo.DetailRepo
}

// NewSlipwayService constructs a SlipwayService backed by the provided repos.
func NewSlipwayService(coords repo.CoordinateRepo, details repo.DetailRepo) *SlipwayService {
	return &SlipwayService{coords: coords, details: details}
}

// Create validates and persists a new slipway, assigning its id.
// The coordinate and detail halves are two separate writes, not a
// transaction; if the detail write fails the coordinate write is
// compensated with a delete so no orphaned half is left behind.
// Returns domain.ErrValidation for a missing name or unparseable position.
func (s *SlipwayService) Create(ctx context.Context, lat, lng float64, d domain.Detail) (string, error) {
	if strings.TrimSpace(d.Name) == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", fmt.Errorf("%w: position is out of range", domain.ErrValidation)
	}

	id := uuid.NewString()
	latStr := strconv.FormatFloat(lat, 'f', -1, 64)
	lngStr := strconv.FormatFloat(lng, 'f', -1, 64)

	if err := s.coords.Put(ctx, id, latStr, lngStr); err != nil {
		return "", fmt.Errorf("service.SlipwayService.Create: %w", err)
	}
	if err := s.details.Put(ctx, id, d); err != nil {
		// Compensate the first write so a failed create leaves no orphan.
		if derr := s.coords.Delete(ctx, id); derr != nil {
			return "", fmt.Errorf("service.SlipwayService.Create: %w (compensating delete also failed: %v)", err, derr)
		}
		return "", fmt.Errorf("service.SlipwayService.Create: %w", err)
	}
	return id, nil
}

// Get returns a single joined slipway by id.
// Returns domain.ErrNotFound when either half of the record is missing —
// an orphaned half is never rendered.
func (s *SlipwayService) Get(ctx context.Context, id string) (domain.Slipway, error) {
	pair, err := s.coords.Get(ctx, id)
	if err != nil {
		return domain.Slipway{}, fmt.Errorf("service.SlipwayService.Get: %w", err)
	}
	d, err := s.details.Get(ctx, id)
	if err != nil {
		return domain.Slipway{}, fmt.Errorf("service.SlipwayService.Get: %w", err)
	}

	joined := pipeline.Join(map[string][]string{id: pair}, map[string]domain.Detail{id: d})
	if len(joined) == 0 {
		// The stored pair exists but does not parse as decimal degrees.
		return domain.Slipway{}, fmt.Errorf("service.SlipwayService.Get: %w", domain.ErrNotFound)
	}
	return joined[0], nil
}

// Save fully overwrites the detail record for an existing slipway.
// The stored image list and comment list are carried over from the current
// record: images change only through AttachImage, comments only through
// AddComment. There is no version check — concurrent saves are last-writer-
// wins, a known and accepted race.
func (s *SlipwayService) Save(ctx context.Context, id string, d domain.Detail) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	current, err := s.details.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("service.SlipwayService.Save: %w", err)
	}
	d.Imgs = current.Imgs
	d.Comments = current.Comments

	if err := s.details.Put(ctx, id, d); err != nil {
		return fmt.Errorf("service.SlipwayService.Save: %w", err)
	}
	return nil
}

// AttachImage appends a confirmed image id to the slipway's image list.
// Callers must only invoke this after the upload handshake has fully
// succeeded — the image list must never reference an unconfirmed upload.
func (s *SlipwayService) AttachImage(ctx context.Context, id, imageID string) error {
	if strings.TrimSpace(imageID) == "" {
		return fmt.Errorf("%w: image id is required", domain.ErrValidation)
	}

	d, err := s.details.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("service.SlipwayService.AttachImage: %w", err)
	}
	d.Imgs = append(d.Imgs, imageID)

	if err := s.details.Put(ctx, id, d); err != nil {
		return fmt.Errorf("service.SlipwayService.AttachImage: %w", err)
	}
	return nil
}

// AddComment appends a comment to the slipway, assigning its id and
// wall-clock timestamp. Comments are append-only; nothing mutates or
// removes one after this.
// Returns domain.ErrValidation for empty text or a rating outside 1–5.
func (s *SlipwayService) AddComment(ctx context.Context, id string, c domain.Comment) (domain.Comment, error) {
	if strings.TrimSpace(c.Text) == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return domain.Comment{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	d, err := s.details.Get(ctx, id)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.SlipwayService.AddComment: %w", err)
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	d.Comments = append(d.Comments, c)

	if err := s.details.Put(ctx, id, d); err != nil {
		return domain.Comment{}, fmt.Errorf("service.SlipwayService.AddComment: %w", err)
	}
	return c, nil
}

// MarkerSet is the renderable output of the marker pipeline.
type MarkerSet struct {
	// Slipways is the filtered entity set to render.
	Slipways []domain.Slipway

	// Degraded is true when the store could not be loaded and Slipways
	// holds the fixed demonstration set instead. The UI shows a
	// non-blocking banner; it is never a fatal error.
	Degraded bool
}

// Markers loads both tables, joins them, and applies the active filters.
// A load failure degrades to the three sample slipways (still filtered)
// rather than returning an error — rendering nothing is worse than
// rendering the demonstration set.
func (s *SlipwayService) Markers(ctx context.Context, filters pipeline.Filters) (MarkerSet, error) {
	entities, err := pipeline.Load(ctx, s.coords, s.details)
	if err != nil {
		if errors.Is(err, pipeline.ErrLoadFailure) {
			return MarkerSet{Slipways: filters.Apply(pipeline.SampleSlipways()), Degraded: true}, nil
		}
		return MarkerSet{}, fmt.Errorf("service.SlipwayService.Markers: %w", err)
	}
	return MarkerSet{Slipways: filters.Apply(entities)}, nil
}
