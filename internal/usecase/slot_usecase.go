package usecase

import (
	"bitefeed/internal/domain/entity"
)

// SlotPlan is the bookable schedule for one restaurant under one vibe.
type SlotPlan struct {
	TimeSlots          []string `json:"time_slots"`
	DiscountPercentage int      `json:"discount_percentage"`
}

// SlotResolver defines the interface for resolving bookable time slots.
// Resolution walks vibe override, then restaurant-level data, then the
// built-in defaults for the vibe, so a restaurant always offers slots.
type SlotResolver interface {
	Resolve(restaurant *entity.Restaurant, vibe entity.Vibe) SlotPlan
}
