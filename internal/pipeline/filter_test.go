package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boatlaunch/slipway-map/internal/domain"
	"github.com/boatlaunch/slipway-map/internal/pipeline"
)

// filterFixture returns one entity per suitability tier plus one with no
// suitability recorded, in a fixed order.
func filterFixture() []domain.Slipway {
	return []domain.Slipway{
		{ID: "large", Suitability: domain.SuitabilityLargeTrailer, RampLength: "Long"},
		{ID: "small", Suitability: domain.SuitabilitySmallTrailer, RampLength: "Medium"},
		{ID: "portable", Suitability: domain.SuitabilityPortable, RampLength: "Short"},
		{ID: "absent", RampLength: "Long"},
	}
}

func ids(entities []domain.Slipway) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestFilters_ZeroValuePassesAll(t *testing.T) {
	got := pipeline.Filters{}.Apply(filterFixture())

	assert.Equal(t, []string{"large", "small", "portable", "absent"}, ids(got))
}

// TestFilters_SuitabilityHierarchy exercises the three tiers: each filter
// admits its own tier and every more capable one, and only the
// "Portable Only" tier admits entities with no suitability value.
func TestFilters_SuitabilityHierarchy(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{
			name:   "large trailer admits only exact matches",
			filter: domain.SuitabilityLargeTrailer,
			want:   []string{"large"},
		},
		{
			name:   "small trailer admits small and large",
			filter: domain.SuitabilitySmallTrailer,
			want:   []string{"large", "small"},
		},
		{
			name:   "portable admits everything including absent",
			filter: domain.SuitabilityPortable,
			want:   []string{"large", "small", "portable", "absent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pipeline.Filters{Suitability: tt.filter}.Apply(filterFixture())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// TestFilters_AbsentSuitabilityExcludedByTrailerTiers pins the asymmetry:
// an entity with no suitability value passes "Portable Only" but is
// excluded by either trailer tier.
func TestFilters_AbsentSuitabilityExcludedByTrailerTiers(t *testing.T) {
	absent := []domain.Slipway{{ID: "absent"}}

	assert.NotEmpty(t, pipeline.Filters{Suitability: domain.SuitabilityPortable}.Apply(absent))
	assert.Empty(t, pipeline.Filters{Suitability: domain.SuitabilitySmallTrailer}.Apply(absent))
	assert.Empty(t, pipeline.Filters{Suitability: domain.SuitabilityLargeTrailer}.Apply(absent))
}

func TestFilters_RampLengthExactMatch(t *testing.T) {
	got := pipeline.Filters{RampLength: "Long"}.Apply(filterFixture())

	assert.Equal(t, []string{"large", "absent"}, ids(got))
}

// TestFilters_CombineByAND verifies an entity matching one predicate but
// not the other is excluded.
func TestFilters_CombineByAND(t *testing.T) {
	f := pipeline.Filters{RampLength: "Long", Suitability: domain.SuitabilityLargeTrailer}

	got := f.Apply(filterFixture())

	// "absent" matches the ramp length but fails the suitability filter;
	// "small" would pass neither.
	assert.Equal(t, []string{"large"}, ids(got))
}

func TestFilters_Idempotent(t *testing.T) {
	f := pipeline.Filters{Suitability: domain.SuitabilitySmallTrailer}
	input := filterFixture()

	first := f.Apply(input)
	second := f.Apply(input)

	assert.Equal(t, first, second)
	// The input is never mutated.
	assert.Equal(t, []string{"large", "small", "portable", "absent"}, ids(input))
}
