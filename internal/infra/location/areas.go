// Package location implements the area table and reverse geocoding used for
// proximity ranking. The service launches in the DC metro area, so the
// table is static.
package location

import (
	"bitefeed/config"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/geo"

	"github.com/paulmach/orb"
)

const defaultAreaLabel = "Washington DC"

// areaProvider implements the service.LocationProvider interface.
type areaProvider struct {
	areas       []service.Area
	defaultArea service.Area
}

// NewAreaProvider is the constructor for areaProvider. The configured
// default area must name a known area; unknown values degrade to the
// city-wide default.
func NewAreaProvider(cfg *config.Config) service.LocationProvider {
	provider := &areaProvider{
		areas: []service.Area{
			{Label: "Washington DC", Point: orb.Point{-77.0369, 38.9072}},
			{Label: "Georgetown, Washington DC", Point: orb.Point{-77.0654, 38.9098}},
			{Label: "Dupont Circle, Washington DC", Point: orb.Point{-77.0432, 38.9095}},
			{Label: "Adams Morgan, Washington DC", Point: orb.Point{-77.0425, 38.9219}},
			{Label: "Capitol Hill, Washington DC", Point: orb.Point{-77.0091, 38.8899}},
			{Label: "Downtown DC, Washington DC", Point: orb.Point{-77.0364, 38.8951}},
			{Label: "Arlington, VA", Point: orb.Point{-77.0915, 38.8868}},
			{Label: "Alexandria, VA", Point: orb.Point{-77.0594, 38.8318}},
			{Label: "Bethesda, MD", Point: orb.Point{-77.0947, 38.9847}},
		},
	}

	label := defaultAreaLabel
	if cfg.Feed != nil && cfg.Feed.DefaultArea != "" {
		label = cfg.Feed.DefaultArea
	}
	if pt, ok := provider.Resolve(label); ok {
		provider.defaultArea = service.Area{Label: label, Point: pt}
	} else {
		provider.defaultArea = provider.areas[0]
	}

	return provider
}

// Areas lists the selectable areas.
func (p *areaProvider) Areas() []service.Area {
	out := make([]service.Area, len(p.areas))
	copy(out, p.areas)

	return out
}

// Resolve maps an area label to its coordinates.
func (p *areaProvider) Resolve(label string) (orb.Point, bool) {
	for _, area := range p.areas {
		if area.Label == label {
			return area.Point, true
		}
	}

	return orb.Point{}, false
}

// ReverseGeocode returns the label of the known area nearest to the point.
func (p *areaProvider) ReverseGeocode(pt orb.Point) string {
	nearest := p.defaultArea
	best := -1.0
	for _, area := range p.areas {
		distance := geo.MilesBetween(pt, area.Point)
		if best < 0 || distance < best {
			best = distance
			nearest = area
		}
	}

	return nearest.Label
}

// DefaultOrigin is the fallback proximity origin.
func (p *areaProvider) DefaultOrigin() orb.Point {
	return p.defaultArea.Point
}
