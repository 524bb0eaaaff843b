package entity

import "time"

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingCommission is the flat per-booking commission in dollars.
const BookingCommission = 3.0

// Booking is a confirmed-or-pending table reservation against a time slot.
type Booking struct {
	ID                 string
	BookingNumber      string // user-facing, e.g. "VB-2025-345637"
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	UserID             string
	UserEmail          string
	Date               string // "2025-01-15"
	Time               string // "18:30"
	GuestCount         int
	SpecialNotes       string
	DiscountPercentage int
	Status             BookingStatus
	Commission         float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
