package entity

import "github.com/paulmach/orb"

// ThemeAll is the theme and cuisine wildcard; it never filters.
const ThemeAll = "All"

// FeedQuery describes one requested feed composition.
type FeedQuery struct {
	Vibe    Vibe
	Cuisine string // dining only; "" or "All" means unfiltered
	Theme   string // brunch / happy-hour only; "" or "All" means unfiltered

	// Origin is the proximity reference point for distance ranking.
	// Nil disables distance annotation and leaves fetch order untouched.
	Origin *orb.Point
}

// FeedItem is a restaurant plus its transient composition annotations.
type FeedItem struct {
	Restaurant *Restaurant

	// DistanceMiles is set when both the query origin and the restaurant
	// coordinates are known; nil ranks after every defined distance.
	DistanceMiles *float64
}

// FeedResult is the ordered, filtered, deduplicated feed for one query.
type FeedResult struct {
	Query FeedQuery
	Items []FeedItem
}

// IDs returns the restaurant IDs in feed order.
func (r *FeedResult) IDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		ids = append(ids, item.Restaurant.ID)
	}

	return ids
}
