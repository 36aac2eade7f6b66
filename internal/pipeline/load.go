package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// ErrLoadFailure is returned by Load when either table cannot be read or
// comes back empty. Callers fall back to SampleSlipways rather than
// rendering an empty map; the failure is a degrade signal, not a fault to
// surface to the end user.
var ErrLoadFailure = errors.New("marker data unavailable")

// CoordinateSource is the read side of the coordinate table the pipeline
// needs. repo.CoordinateRepo satisfies it.
type CoordinateSource interface {
	All(ctx context.Context) (map[string][]string, error)
}

// DetailSource is the read side of the detail table the pipeline needs.
// repo.DetailRepo satisfies it.
type DetailSource interface {
	All(ctx context.Context) (map[string]domain.Detail, error)
}

// Load reads both tables concurrently and joins them. The two reads are
// awaited jointly: both must succeed and be non-empty, or the whole load is
// treated as failed — there is no partial-table rendering.
func Load(ctx context.Context, coords CoordinateSource, details DetailSource) ([]domain.Slipway, error) {
	var (
		coordTable  map[string][]string
		detailTable map[string]domain.Detail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coordTable, err = coords.All(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		detailTable, err = details.All(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	if len(coordTable) == 0 || len(detailTable) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrLoadFailure)
	}

	return Join(coordTable, detailTable), nil
}
