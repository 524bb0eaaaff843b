package model

import (
	"time"

	"bitefeed/internal/domain/entity"
)

// SavedRestaurantModel is one entry of the savedRestaurants array on a
// user document.
type SavedRestaurantModel struct {
	ID                 string    `firestore:"id"`
	Name               string    `firestore:"name"`
	Cuisine            string    `firestore:"cuisine"`
	Location           string    `firestore:"location"`
	VideoURL           string    `firestore:"videoUrl"`
	ImageURL           string    `firestore:"imageUrl"`
	DiscountPercentage *int      `firestore:"discountPercentage"`
	HappyHourDeals     []string  `firestore:"happyHourDeals"`
	Offers             []string  `firestore:"offers"`
	IsFavorite         bool      `firestore:"isFavorite"`
	SavedAt            time.Time `firestore:"savedAt"`
}

// UserModel is the Firestore-specific struct for the 'users' collection.
// Only the fields this service touches are mapped; the auth provider owns
// the rest of the document.
type UserModel struct {
	Email            string                 `firestore:"email"`
	SavedRestaurants []SavedRestaurantModel `firestore:"savedRestaurants"`
}

// ToSavedDomain converts the saved array into domain snapshots.
func ToSavedDomain(models []SavedRestaurantModel) []entity.SavedRestaurant {
	out := make([]entity.SavedRestaurant, 0, len(models))
	for _, m := range models {
		out = append(out, entity.SavedRestaurant{
			ID:                 m.ID,
			Name:               m.Name,
			Cuisine:            m.Cuisine,
			Location:           m.Location,
			VideoURL:           m.VideoURL,
			ImageURL:           m.ImageURL,
			DiscountPercentage: m.DiscountPercentage,
			HappyHourDeals:     m.HappyHourDeals,
			Offers:             m.Offers,
			IsFavorite:         m.IsFavorite,
			SavedAt:            m.SavedAt,
		})
	}

	return out
}

// FromSavedDomain converts domain snapshots into the stored array shape.
func FromSavedDomain(saved []entity.SavedRestaurant) []SavedRestaurantModel {
	out := make([]SavedRestaurantModel, 0, len(saved))
	for _, s := range saved {
		out = append(out, SavedRestaurantModel{
			ID:                 s.ID,
			Name:               s.Name,
			Cuisine:            s.Cuisine,
			Location:           s.Location,
			VideoURL:           s.VideoURL,
			ImageURL:           s.ImageURL,
			DiscountPercentage: s.DiscountPercentage,
			HappyHourDeals:     s.HappyHourDeals,
			Offers:             s.Offers,
			IsFavorite:         s.IsFavorite,
			SavedAt:            s.SavedAt,
		})
	}

	return out
}
