// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Vibe is one of the three top-level browsing contexts.
type Vibe string

const (
	VibeDining    Vibe = "dining"
	VibeBrunch    Vibe = "brunch"
	VibeHappyHour Vibe = "happy-hour"
)

// Valid reports whether v is a known vibe.
func (v Vibe) Valid() bool {
	switch v {
	case VibeDining, VibeBrunch, VibeHappyHour:
		return true
	}

	return false
}

// PriceTier is the display price bucket, e.g. "$", "$$", "$$$".
type PriceTier string

// DealItem is a single happy-hour deal entry (e.g. "beer" -> $5).
type DealItem struct {
	Enabled bool
	Price   float64
}

// HappyHourWindow describes when a restaurant's happy hour runs.
type HappyHourWindow struct {
	StartTime string   // "16:00"
	EndTime   string   // "19:00"
	Days      []string // e.g. ["Mon", "Tue", "Wed", "Thu", "Fri"]
}

// VibeDetails carries the per-vibe override fields of a restaurant.
// Absent fields fall back to the restaurant's base values; the fallback
// ladder lives in the slot resolver, not here.
type VibeDetails struct {
	Description        string
	TimeSlots          []string
	DiscountPercentage *int
}

// Restaurant is the catalog entity. It is immutable input to feed
// composition; derived values like distance are carried on FeedItem,
// never written back onto the restaurant.
type Restaurant struct {
	ID             string
	Name           string
	PrimaryCuisine string
	Cuisines       []string // always includes PrimaryCuisine
	Location       string   // free-text neighborhood label
	Address        string
	Description    string
	VideoURL       string
	ImageURL       string
	Rating         float64 // 0.0 - 5.0
	PriceTier      PriceTier
	IsActive       bool
	IsPopular      bool
	Vibes          []Vibe // every active restaurant carries VibeDining

	// Coordinates is nil when the catalog has no location fix for the
	// restaurant; nil means "no distance", which ranks last.
	Coordinates *orb.Point

	DiscountPercentage int      // default / dining discount
	TimeSlots          []string // default / dining slots

	// Overrides maps a vibe to its specific description, slots and discount.
	// The dining vibe uses the base fields and has no override entry.
	Overrides map[Vibe]VibeDetails

	HappyHourDeal   string // e.g. "2-for-1 cocktails"
	HappyHourWindow *HappyHourWindow
	DrinkDeals      map[string]DealItem
	FoodDeals       map[string]DealItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasVibe reports whether the restaurant is tagged with the given vibe.
func (r *Restaurant) HasVibe(v Vibe) bool {
	for _, vv := range r.Vibes {
		if vv == v {
			return true
		}
	}

	return false
}

// HasCuisine reports whether c matches the primary cuisine or appears in
// the cuisines array.
func (r *Restaurant) HasCuisine(c string) bool {
	if r.PrimaryCuisine == c {
		return true
	}
	for _, cc := range r.Cuisines {
		if cc == c {
			return true
		}
	}

	return false
}

// DetailsFor returns the override details for a vibe, if any.
func (r *Restaurant) DetailsFor(v Vibe) (VibeDetails, bool) {
	if r.Overrides == nil {
		return VibeDetails{}, false
	}
	d, ok := r.Overrides[v]

	return d, ok
}
