package domain

import "strings"

// ParseFacilities derives the in-memory facility list from the stored
// comma-joined string. Empty and whitespace-only segments are dropped and
// order is preserved, so "Parking, Toilets, , Café" parses to
// ["Parking" "Toilets" "Café"].
func ParseFacilities(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinFacilities flattens a facility list back to the stored comma-joined
// form. Entries are trimmed and empties dropped first, so a parse→join
// round-trip is stable.
func JoinFacilities(facilities []string) string {
	var kept []string
	for _, f := range facilities {
		if t := strings.TrimSpace(f); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ", ")
}
