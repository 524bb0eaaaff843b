// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import "github.com/paulmach/orb"

// Area is a named neighborhood with a ranking reference point.
type Area struct {
	Label string    `json:"label"`
	Point orb.Point `json:"point"`
}

// LocationProvider resolves named areas and coordinates for proximity
// ranking. Implementations must always be able to produce a default origin;
// a denied or unavailable device location degrades to that default rather
// than failing the feed.
type LocationProvider interface {
	// Areas lists the selectable areas.
	Areas() []Area

	// Resolve maps an area label to its coordinates.
	Resolve(label string) (orb.Point, bool)

	// ReverseGeocode returns the human label of the known area nearest to
	// the point.
	ReverseGeocode(pt orb.Point) string

	// DefaultOrigin is the fallback proximity origin used when neither a
	// GPS fix nor a manually chosen area is available.
	DefaultOrigin() orb.Point
}
