// Package catalog provides the bundled sample catalog and the fallback
// decorator that serves it when the hosted catalog is unreachable.
package catalog

import "bitefeed/internal/domain/entity"

func intPtr(v int) *int {
	return &v
}

var weekdayHappyHour = &entity.HappyHourWindow{
	StartTime: "16:00",
	EndTime:   "19:00",
	Days:      []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
}

// SampleRestaurants returns the bundled resiliency catalog. Content mirrors
// the seed data shipped with the mobile client so an offline backend still
// produces a full-featured feed.
func SampleRestaurants() []*entity.Restaurant {
	return []*entity.Restaurant{
		{
			ID:                 "1",
			Name:               "Sage Bistro",
			PrimaryCuisine:     "American",
			Cuisines:           []string{"American", "Mediterranean"},
			Location:           "Downtown DC",
			Description:        "Farm-to-table dining with seasonal ingredients",
			VideoURL:           "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			IsActive:           true,
			IsPopular:          true,
			Vibes:              []entity.Vibe{entity.VibeDining, entity.VibeBrunch, entity.VibeHappyHour},
			DiscountPercentage: 30,
			TimeSlots:          []string{"18:00", "18:30", "19:00", "19:30"},
			Overrides: map[entity.Vibe]entity.VibeDetails{
				entity.VibeBrunch: {
					Description:        "Weekend brunch with bottomless mimosas and farm-fresh eggs - trendy rooftop dining experience",
					TimeSlots:          []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"},
					DiscountPercentage: intPtr(25),
				},
				entity.VibeHappyHour: {
					Description: "Craft cocktails and small plates from 4-7pm",
					TimeSlots:   []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00"},
				},
			},
			HappyHourDeal:   "2-for-1 cocktails",
			HappyHourWindow: weekdayHappyHour,
			DrinkDeals: map[string]entity.DealItem{
				"cocktails": {Enabled: true, Price: 6},
				"beer":      {Enabled: true, Price: 5},
				"wine":      {Enabled: true, Price: 7},
				"sake":      {Enabled: false, Price: 0},
			},
			FoodDeals: map[string]entity.DealItem{
				"sliders": {Enabled: true, Price: 7},
			},
		},
		{
			ID:                 "2",
			Name:               "Ramen House",
			PrimaryCuisine:     "Japanese",
			Cuisines:           []string{"Japanese", "Korean"},
			Location:           "Georgetown",
			Description:        "Authentic Tokyo-style ramen and small plates",
			IsActive:           true,
			Vibes:              []entity.Vibe{entity.VibeDining, entity.VibeHappyHour},
			DiscountPercentage: 40,
			TimeSlots:          []string{"12:00", "12:30", "13:00", "13:30"},
			Overrides: map[entity.Vibe]entity.VibeDetails{
				entity.VibeHappyHour: {
					Description: "Sake specials and izakaya-style small plates",
					TimeSlots:   []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00"},
				},
			},
			HappyHourDeal:   "Half-price sake",
			HappyHourWindow: weekdayHappyHour,
			DrinkDeals: map[string]entity.DealItem{
				"beer": {Enabled: true, Price: 5},
				"wine": {Enabled: true, Price: 6},
				"sake": {Enabled: true, Price: 4},
			},
		},
		{
			ID:                 "3",
			Name:               "Spice Garden",
			PrimaryCuisine:     "Indian",
			Cuisines:           []string{"Indian", "Thai"},
			Location:           "Adams Morgan",
			Description:        "Modern Indian cuisine with Thai influences",
			IsActive:           true,
			IsPopular:          true,
			Vibes:              []entity.Vibe{entity.VibeDining, entity.VibeHappyHour},
			DiscountPercentage: 25,
			TimeSlots:          []string{"18:00", "18:30", "19:00", "19:30", "20:00"},
			Overrides: map[entity.Vibe]entity.VibeDetails{
				entity.VibeHappyHour: {
					Description: "Craft cocktails and fusion small plates",
					TimeSlots:   []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00"},
				},
			},
			HappyHourDeal:   "2-for-1 appetizers",
			HappyHourWindow: weekdayHappyHour,
			DrinkDeals: map[string]entity.DealItem{
				"cocktails": {Enabled: true, Price: 5},
				"beer":      {Enabled: true, Price: 4},
				"wine":      {Enabled: true, Price: 6},
			},
		},
		{
			ID:                 "4",
			Name:               "Le Petit Bistro",
			PrimaryCuisine:     "French",
			Cuisines:           []string{"French", "Mediterranean"},
			Location:           "Dupont Circle",
			Description:        "Classic French cuisine with Mediterranean flair",
			IsActive:           true,
			Vibes:              []entity.Vibe{entity.VibeDining, entity.VibeBrunch},
			DiscountPercentage: 35,
			TimeSlots:          []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30"},
			Overrides: map[entity.Vibe]entity.VibeDetails{
				entity.VibeBrunch: {
					Description:        "French brunch with Mediterranean specialties - trendy modern atmosphere",
					TimeSlots:          []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"},
					DiscountPercentage: intPtr(20),
				},
			},
		},
	}
}
