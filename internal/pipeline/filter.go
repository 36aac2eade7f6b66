package pipeline

import "github.com/boatlaunch/slipway-map/internal/domain"

// suitabilityRank orders the tiers from least to most capable launch.
// A filter admits its own tier and every higher-ranked one.
var suitabilityRank = map[string]int{
	domain.SuitabilityPortable:     0,
	domain.SuitabilitySmallTrailer: 1,
	domain.SuitabilityLargeTrailer: 2,
}

// Filters holds the two active map filters. The zero value passes everything.
type Filters struct {
	// RampLength filters by exact string match. Empty = pass-all.
	RampLength string

	// Suitability filters hierarchically: "Portable Only" admits every
	// entity regardless of suitability value; "Small trailer can be pushed"
	// admits that tier plus "Large trailer needs a car"; "Large trailer
	// needs a car" admits only exact matches. An entity with no suitability
	// value is excluded by the two trailer tiers but admitted by
	// "Portable Only". Empty = pass-all.
	Suitability string
}

// Apply returns the entities admitted by both predicates, preserving the
// order of the input. It never mutates the input slice and is idempotent:
// identical inputs always produce identical output.
func (f Filters) Apply(entities []domain.Slipway) []domain.Slipway {
	out := make([]domain.Slipway, 0, len(entities))
	for _, e := range entities {
		if f.admits(e) {
			out = append(out, e)
		}
	}
	return out
}

// admits reports whether a single entity passes both predicates (AND).
func (f Filters) admits(e domain.Slipway) bool {
	if f.RampLength != "" && e.RampLength != f.RampLength {
		return false
	}
	return f.admitsSuitability(e.Suitability)
}

func (f Filters) admitsSuitability(value string) bool {
	switch f.Suitability {
	case "":
		return true
	case domain.SuitabilityPortable:
		// Everything can be launched where a portable can, including
		// entities that never recorded a suitability.
		return true
	}
	want, ok := suitabilityRank[f.Suitability]
	if !ok {
		// Unrecognized filter value: fall back to exact match.
		return value == f.Suitability
	}
	have, ok := suitabilityRank[value]
	if !ok {
		// No (or unrecognized) suitability on the entity: excluded while a
		// trailer-tier filter is active.
		return false
	}
	return have >= want
}
