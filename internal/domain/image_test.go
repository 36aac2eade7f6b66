package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// TestImageURL verifies the display URL is derived as prefix + id + fixed
// suffix — absolute URLs are never stored.
func TestImageURL(t *testing.T) {
	got := domain.ImageURL("s3-eu-west-1.amazonaws.com", "slipway-photos", "slipway_abc_1712000000000_000042")

	assert.Equal(t,
		"https://s3-eu-west-1.amazonaws.com/slipway-photos/WebSitePhotos/slipway_abc_1712000000000_000042___Source.jpg",
		got)
}

func TestImageKey(t *testing.T) {
	assert.Equal(t, "WebSitePhotos/img-1___Source.jpg", domain.ImageKey("img-1"))
}
