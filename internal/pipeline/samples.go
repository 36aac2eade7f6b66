package pipeline

import "github.com/boatlaunch/slipway-map/internal/domain"

// SampleSlipways returns the three fixed demonstration entities shown when
// the store cannot be loaded. A fresh slice is returned on every call so
// callers can filter or sort it without corrupting later fallbacks.
func SampleSlipways() []domain.Slipway {
	return []domain.Slipway{
		{
			ID:           "sample-cobb-gate",
			Lat:          50.7214,
			Lng:          -2.9377,
			Name:         "Cobb Gate Slipway",
			Description:  "Stone slipway onto the beach east of the Cobb.",
			NearestPlace: "Lyme Regis",
			RampType:     "Concrete",
			Suitability:  domain.SuitabilitySmallTrailer,
			RampLength:   "Medium",
			Facilities:   []string{"Parking", "Toilets"},
		},
		{
			ID:           "sample-knott-end",
			Lat:          53.9261,
			Lng:          -2.9926,
			Name:         "Knott End Slipway",
			Description:  "Wide ramp into the Wyre estuary, dries at low water.",
			NearestPlace: "Knott End-on-Sea",
			RampType:     "Concrete",
			Suitability:  domain.SuitabilityLargeTrailer,
			RampLength:   "Long",
			Facilities:   []string{"Parking"},
		},
		{
			ID:           "sample-mylor",
			Lat:          50.1766,
			Lng:          -5.0527,
			Name:         "Mylor Harbour Slipway",
			Description:  "Sheltered launch inside the harbour, usable most states of tide.",
			NearestPlace: "Mylor Bridge",
			RampType:     "Concrete",
			Suitability:  domain.SuitabilityPortable,
			RampLength:   "Short",
			Facilities:   []string{"Parking", "Toilets", "Café"},
		},
	}
}
