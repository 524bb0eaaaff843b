package impl

import (
	"bitefeed/internal/domain/entity"
	"bitefeed/internal/usecase"
)

// Built-in slot ladders used when neither the vibe override nor the
// restaurant record carries time slots.
var (
	defaultDiningSlots = []string{"18:00", "18:30", "19:00", "19:30"}
	defaultBrunchSlots = []string{
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	}
	defaultHappyHourSlots = []string{
		"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00",
	}
)

type slotResolver struct{}

// NewSlotResolver is the constructor for slotResolver.
func NewSlotResolver() usecase.SlotResolver {
	return &slotResolver{}
}

// Resolve walks the fallback ladder for the vibe: override slots win over
// restaurant-level slots, which win over the built-in defaults. The discount
// resolves the same way against the restaurant's base discount.
func (slotResolver) Resolve(restaurant *entity.Restaurant, vibe entity.Vibe) usecase.SlotPlan {
	plan := usecase.SlotPlan{
		TimeSlots:          restaurant.TimeSlots,
		DiscountPercentage: restaurant.DiscountPercentage,
	}

	if details, ok := restaurant.DetailsFor(vibe); ok {
		if len(details.TimeSlots) > 0 {
			plan.TimeSlots = details.TimeSlots
		}
		if details.DiscountPercentage != nil {
			plan.DiscountPercentage = *details.DiscountPercentage
		}
	}

	if len(plan.TimeSlots) == 0 {
		plan.TimeSlots = defaultSlots(vibe)
	}

	return plan
}

func defaultSlots(vibe entity.Vibe) []string {
	switch vibe {
	case entity.VibeBrunch:
		return defaultBrunchSlots
	case entity.VibeHappyHour:
		return defaultHappyHourSlots
	default:
		return defaultDiningSlots
	}
}
