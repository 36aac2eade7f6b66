package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// TestParseFacilities_DropsEmptySegments covers the canonical round-trip:
// empty and whitespace-only segments are dropped and order is preserved.
func TestParseFacilities_DropsEmptySegments(t *testing.T) {
	got := domain.ParseFacilities("Parking, Toilets, , Café")

	assert.Equal(t, []string{"Parking", "Toilets", "Café"}, got)
}

func TestParseFacilities_EmptyString(t *testing.T) {
	assert.Nil(t, domain.ParseFacilities(""))
}

func TestJoinFacilities_RoundTrip(t *testing.T) {
	joined := domain.JoinFacilities([]string{"Parking", "Toilets", "Café"})

	assert.Equal(t, "Parking, Toilets, Café", joined)
	assert.Equal(t, []string{"Parking", "Toilets", "Café"}, domain.ParseFacilities(joined))
}

func TestJoinFacilities_DropsBlankEntries(t *testing.T) {
	assert.Equal(t, "Parking", domain.JoinFacilities([]string{" ", "Parking", ""}))
}
