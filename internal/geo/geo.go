// Package geo provides great-circle distance math for feed ranking.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMiles is the radius used for haversine distances. The catalog
// stores distances in miles, so ranking keeps the same unit end to end.
const EarthRadiusMiles = 3959.0

// MilesBetween returns the haversine great-circle distance in miles between
// two points. Points are orb.Point{lng, lat} pairs. The result is symmetric
// and zero for identical points.
func MilesBetween(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}
