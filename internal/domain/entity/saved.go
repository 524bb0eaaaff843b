package entity

import "time"

// SavedRestaurant is the denormalized snapshot stored when a user bookmarks
// a restaurant. The snapshot is frozen at save time; later catalog edits do
// not flow back into it.
type SavedRestaurant struct {
	ID                 string
	Name               string
	Cuisine            string
	Location           string
	VideoURL           string
	ImageURL           string
	DiscountPercentage *int
	HappyHourDeals     []string
	Offers             []string
	IsFavorite         bool
	SavedAt            time.Time
}

// NewSavedSnapshot freezes the renderable fields of a restaurant into a
// SavedRestaurant. The offer label mirrors the restaurant's strongest vibe
// tag: happy-hour wins over brunch, which wins over plain dining.
func NewSavedSnapshot(r *Restaurant, now time.Time) SavedRestaurant {
	s := SavedRestaurant{
		ID:         r.ID,
		Name:       r.Name,
		Cuisine:    r.PrimaryCuisine,
		Location:   r.Location,
		VideoURL:   r.VideoURL,
		ImageURL:   r.ImageURL,
		IsFavorite: true,
		SavedAt:    now,
	}

	switch {
	case r.HasVibe(VibeHappyHour):
		s.Offers = []string{"Happy Hour"}
	case r.HasVibe(VibeBrunch):
		s.Offers = []string{"Brunch"}
	default:
		s.Offers = []string{"Dining"}
	}

	if r.DiscountPercentage > 0 {
		discount := r.DiscountPercentage
		s.DiscountPercentage = &discount
	}
	if r.HappyHourDeal != "" {
		s.HappyHourDeals = []string{r.HappyHourDeal}
	}

	return s
}
