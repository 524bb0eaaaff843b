// Package model contains the Firestore document structs and their mapping
// to domain entities. Field names follow the hosted document schema.
package model

import (
	"time"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/errors"

	"github.com/paulmach/orb"
)

// ErrIncompleteRestaurant marks a document missing fields the feed cannot
// render without. Callers skip such records instead of failing the fetch.
var ErrIncompleteRestaurant = errors.New("incomplete restaurant document")

// DealModel is one happy-hour deal entry, e.g. "beer" -> {enabled, price}.
type DealModel struct {
	Enabled bool    `firestore:"enabled"`
	Price   float64 `firestore:"price"`
}

// RestaurantModel is the Firestore-specific struct for the 'restaurants'
// collection. The flat per-vibe fields mirror the document schema; the
// domain entity regroups them into per-vibe overrides.
type RestaurantModel struct {
	Name                     string               `firestore:"name"`
	Cuisine                  string               `firestore:"cuisine"`
	Cuisines                 []string             `firestore:"cuisines"`
	Location                 string               `firestore:"location"`
	Address                  string               `firestore:"address"`
	Description              string               `firestore:"description"`
	DiscountPercentage       int                  `firestore:"discountPercentage"`
	VideoURL                 string               `firestore:"videoUrl"`
	ImageURL                 string               `firestore:"imageUrl"`
	Rating                   float64              `firestore:"rating"`
	PriceRange               string               `firestore:"priceRange"`
	IsActive                 bool                 `firestore:"isActive"`
	IsPopular                bool                 `firestore:"isPopular"`
	TimeSlots                []string             `firestore:"timeSlots"`
	Latitude                 *float64             `firestore:"latitude"`
	Longitude                *float64             `firestore:"longitude"`
	Vibes                    []string             `firestore:"vibes"`
	BrunchDescription        string               `firestore:"brunchDescription"`
	BrunchTimeSlots          []string             `firestore:"brunchTimeSlots"`
	BrunchDiscountPercentage *int                 `firestore:"brunchDiscountPercentage"`
	HappyHourDescription     string               `firestore:"happyHourDescription"`
	HappyHourTimeSlots       []string             `firestore:"happyHourTimeSlots"`
	HappyHourDeal            string               `firestore:"happyHourDeal"`
	HappyHourStartTime       string               `firestore:"happyHourStartTime"`
	HappyHourEndTime         string               `firestore:"happyHourEndTime"`
	HappyHourDays            []string             `firestore:"happyHourDays"`
	DrinkDeals               map[string]DealModel `firestore:"drinkDeals"`
	FoodDeals                map[string]DealModel `firestore:"foodDeals"`
	CreatedAt                time.Time            `firestore:"createdAt"`
	UpdatedAt                time.Time            `firestore:"updatedAt"`
}

// Validate reports whether the document carries the fields every feed card
// needs.
func (m *RestaurantModel) Validate() error {
	switch {
	case m.Name == "":
		return errors.Wrap(ErrIncompleteRestaurant, "missing name")
	case m.Cuisine == "":
		return errors.Wrap(ErrIncompleteRestaurant, "missing cuisine")
	case m.Description == "":
		return errors.Wrap(ErrIncompleteRestaurant, "missing description")
	}

	return nil
}

// ToRestaurantDomain converts the document into the domain entity. Every
// restaurant is tagged with the dining vibe even when the document omits it.
func ToRestaurantDomain(id string, m *RestaurantModel) *entity.Restaurant {
	restaurant := &entity.Restaurant{
		ID:                 id,
		Name:               m.Name,
		PrimaryCuisine:     m.Cuisine,
		Cuisines:           cuisinesWithPrimary(m.Cuisine, m.Cuisines),
		Location:           m.Location,
		Address:            m.Address,
		Description:        m.Description,
		VideoURL:           m.VideoURL,
		ImageURL:           m.ImageURL,
		Rating:             m.Rating,
		PriceTier:          entity.PriceTier(m.PriceRange),
		IsActive:           m.IsActive,
		IsPopular:          m.IsPopular,
		Vibes:              vibesWithDining(m.Vibes),
		DiscountPercentage: m.DiscountPercentage,
		TimeSlots:          m.TimeSlots,
		HappyHourDeal:      m.HappyHourDeal,
		DrinkDeals:         toDealDomain(m.DrinkDeals),
		FoodDeals:          toDealDomain(m.FoodDeals),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		pt := orb.Point{*m.Longitude, *m.Latitude}
		restaurant.Coordinates = &pt
	}

	overrides := make(map[entity.Vibe]entity.VibeDetails)
	if m.BrunchDescription != "" || len(m.BrunchTimeSlots) > 0 || m.BrunchDiscountPercentage != nil {
		overrides[entity.VibeBrunch] = entity.VibeDetails{
			Description:        m.BrunchDescription,
			TimeSlots:          m.BrunchTimeSlots,
			DiscountPercentage: m.BrunchDiscountPercentage,
		}
	}
	if m.HappyHourDescription != "" || len(m.HappyHourTimeSlots) > 0 {
		overrides[entity.VibeHappyHour] = entity.VibeDetails{
			Description: m.HappyHourDescription,
			TimeSlots:   m.HappyHourTimeSlots,
		}
	}
	if len(overrides) > 0 {
		restaurant.Overrides = overrides
	}

	if m.HappyHourStartTime != "" {
		restaurant.HappyHourWindow = &entity.HappyHourWindow{
			StartTime: m.HappyHourStartTime,
			EndTime:   m.HappyHourEndTime,
			Days:      m.HappyHourDays,
		}
	}

	return restaurant
}

// FromRestaurantDomain converts a domain entity back into the document
// shape. Used by the seeding tool.
func FromRestaurantDomain(restaurant *entity.Restaurant) *RestaurantModel {
	m := &RestaurantModel{
		Name:               restaurant.Name,
		Cuisine:            restaurant.PrimaryCuisine,
		Cuisines:           restaurant.Cuisines,
		Location:           restaurant.Location,
		Address:            restaurant.Address,
		Description:        restaurant.Description,
		DiscountPercentage: restaurant.DiscountPercentage,
		VideoURL:           restaurant.VideoURL,
		ImageURL:           restaurant.ImageURL,
		Rating:             restaurant.Rating,
		PriceRange:         string(restaurant.PriceTier),
		IsActive:           restaurant.IsActive,
		IsPopular:          restaurant.IsPopular,
		TimeSlots:          restaurant.TimeSlots,
		Vibes:              vibesToStrings(restaurant.Vibes),
		HappyHourDeal:      restaurant.HappyHourDeal,
		DrinkDeals:         fromDealDomain(restaurant.DrinkDeals),
		FoodDeals:          fromDealDomain(restaurant.FoodDeals),
		CreatedAt:          restaurant.CreatedAt,
		UpdatedAt:          restaurant.UpdatedAt,
	}

	if restaurant.Coordinates != nil {
		lat := restaurant.Coordinates.Lat()
		lon := restaurant.Coordinates.Lon()
		m.Latitude = &lat
		m.Longitude = &lon
	}

	if details, ok := restaurant.DetailsFor(entity.VibeBrunch); ok {
		m.BrunchDescription = details.Description
		m.BrunchTimeSlots = details.TimeSlots
		m.BrunchDiscountPercentage = details.DiscountPercentage
	}
	if details, ok := restaurant.DetailsFor(entity.VibeHappyHour); ok {
		m.HappyHourDescription = details.Description
		m.HappyHourTimeSlots = details.TimeSlots
	}

	if restaurant.HappyHourWindow != nil {
		m.HappyHourStartTime = restaurant.HappyHourWindow.StartTime
		m.HappyHourEndTime = restaurant.HappyHourWindow.EndTime
		m.HappyHourDays = restaurant.HappyHourWindow.Days
	}

	return m
}

func cuisinesWithPrimary(primary string, cuisines []string) []string {
	for _, c := range cuisines {
		if c == primary {
			return cuisines
		}
	}

	return append([]string{primary}, cuisines...)
}

func vibesWithDining(vibes []string) []entity.Vibe {
	out := make([]entity.Vibe, 0, len(vibes)+1)
	hasDining := false
	for _, v := range vibes {
		vibe := entity.Vibe(v)
		if !vibe.Valid() {
			continue
		}
		if vibe == entity.VibeDining {
			hasDining = true
		}
		out = append(out, vibe)
	}
	if !hasDining {
		out = append([]entity.Vibe{entity.VibeDining}, out...)
	}

	return out
}

func vibesToStrings(vibes []entity.Vibe) []string {
	out := make([]string, 0, len(vibes))
	for _, v := range vibes {
		out = append(out, string(v))
	}

	return out
}

func toDealDomain(deals map[string]DealModel) map[string]entity.DealItem {
	if deals == nil {
		return nil
	}

	out := make(map[string]entity.DealItem, len(deals))
	for name, deal := range deals {
		out[name] = entity.DealItem{Enabled: deal.Enabled, Price: deal.Price}
	}

	return out
}

func fromDealDomain(deals map[string]entity.DealItem) map[string]DealModel {
	if deals == nil {
		return nil
	}

	out := make(map[string]DealModel, len(deals))
	for name, deal := range deals {
		out[name] = DealModel{Enabled: deal.Enabled, Price: deal.Price}
	}

	return out
}
