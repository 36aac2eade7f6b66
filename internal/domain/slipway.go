// Package domain contains the core data types for the Slipway Map application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, pipeline, service, handler).
package domain

import "time"

// Unknown is the sentinel used for optional descriptive fields that were
// never filled in. It matches the value the original data set carries, so
// stored records and defaulted records are indistinguishable to the UI.
const Unknown = "Unknown"

// Suitability tiers, ordered from least to most capable launch.
// A filter on a tier admits that tier and every more capable one;
// see pipeline.Filters for the exact rules.
const (
	SuitabilityPortable     = "Portable Only"
	SuitabilitySmallTrailer = "Small trailer can be pushed"
	SuitabilityLargeTrailer = "Large trailer needs a car"
)

// Slipway is the unified map entity: one coordinate pair joined with one
// detail record under the same id. It only exists in memory — the store
// keeps the two halves in separate tables (see repo).
type Slipway struct {
	ID                  string    `json:"id"`
	Lat                 float64   `json:"lat"`
	Lng                 float64   `json:"lng"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	RampDescription     string    `json:"ramp_description"`
	Facilities          []string  `json:"facilities"`
	Charges             string    `json:"charges"`
	NearestPlace        string    `json:"nearest_place"`
	RampType            string    `json:"ramp_type"`
	Suitability         string    `json:"suitability"`
	RampLength          string    `json:"ramp_length"`
	UpperArea           string    `json:"upper_area"`
	LowerArea           string    `json:"lower_area"`
	Directions          string    `json:"directions"`
	Email               string    `json:"email"`
	MobilePhoneNumber   string    `json:"mobile_phone_number"`
	NavigationalHazards string    `json:"navigational_hazards"`
	Website             string    `json:"website"`
	Images              []string  `json:"images"`
	Comments            []Comment `json:"comments"`
}

// Detail is the stored detail record, one of the two halves of a Slipway.
// Field names and JSON tags follow the wire format of the original document
// store: capitalized field names, Facilities as a comma-joined string, and
// the lowercase legacy keys "imgs" and "comments".
type Detail struct {
	Name                string    `json:"Name"`
	Description         string    `json:"Description"`
	RampDescription     string    `json:"RampDescription"`
	Facilities          string    `json:"Facilities"`
	Charges             string    `json:"Charges"`
	NearestPlace        string    `json:"NearestPlace"`
	RampType            string    `json:"RampType"`
	Suitability         string    `json:"Suitability"`
	RampLength          string    `json:"RampLength"`
	UpperArea           string    `json:"UpperArea"`
	LowerArea           string    `json:"LowerArea"`
	Directions          string    `json:"Directions"`
	Email               string    `json:"Email"`
	MobilePhoneNumber   string    `json:"MobilePhoneNumber"`
	NavigationalHazards string    `json:"NavigationalHazards"`
	Website             string    `json:"Website"`
	Imgs                []string  `json:"imgs"`
	Comments            []Comment `json:"comments"`
}

// Comment is a single user comment on a slipway.
// Comments are append-only: CreatedAt is assigned once at creation and
// never mutated, and no path removes a comment.
type Comment struct {
	ID         string `json:"id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	// Rating is 1–5, or 0 when the commenter left no rating.
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
