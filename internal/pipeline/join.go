// Package pipeline produces the set of map markers to render: it loads the
// two store tables concurrently, joins them into unified entities, applies
// the active filters, and owns the transient view state the map layer
// consumes (selection, center-on requests, add mode).
//
// Join and Filters.Apply are pure functions over their inputs so they can be
// unit-tested without a store or a map widget.
package pipeline

import (
	"sort"
	"strconv"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// Join combines the coordinate table with the detail table into one entity
// per id present in both tables.
//
// An id is skipped — a data-quality skip, never an error — when its
// coordinate pair is missing, shorter than two elements, or fails to parse
// as decimal degrees, or when either half of the record is absent.
//
// Optional descriptive fields default so callers never need to check for
// presence: Name and NearestPlace fall back to "Unknown", everything else
// to the empty string. Output is sorted by id so the result is
// deterministic for identical inputs.
func Join(coords map[string][]string, details map[string]domain.Detail) []domain.Slipway {
	ids := make([]string, 0, len(coords))
	for id := range coords {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]domain.Slipway, 0, len(ids))
	for _, id := range ids {
		pair := coords[id]
		d, ok := details[id]
		if !ok || len(pair) < 2 {
			continue
		}
		lat, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			continue
		}

		out = append(out, domain.Slipway{
			ID:                  id,
			Lat:                 lat,
			Lng:                 lng,
			Name:                defaultString(d.Name, domain.Unknown),
			Description:         d.Description,
			RampDescription:     d.RampDescription,
			Facilities:          domain.ParseFacilities(d.Facilities),
			Charges:             d.Charges,
			NearestPlace:        defaultString(d.NearestPlace, domain.Unknown),
			RampType:            d.RampType,
			Suitability:         d.Suitability,
			RampLength:          d.RampLength,
			UpperArea:           d.UpperArea,
			LowerArea:           d.LowerArea,
			Directions:          d.Directions,
			Email:               d.Email,
			MobilePhoneNumber:   d.MobilePhoneNumber,
			NavigationalHazards: d.NavigationalHazards,
			Website:             d.Website,
			Images:              d.Imgs,
			Comments:            d.Comments,
		})
	}
	return out
}

// defaultString returns s, or fallback when s is empty.
func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
