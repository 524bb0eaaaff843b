package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// CreateBookingInput represents the input for creating a new booking
type CreateBookingInput struct {
	RestaurantID string      `json:"restaurant_id"`
	Vibe         entity.Vibe `json:"vibe"`
	Date         string      `json:"date"`
	TimeSlot     string      `json:"time_slot"`
	GuestCount   int         `json:"guest_count"`
	SpecialNotes string      `json:"special_notes,omitempty"`
}

// BookingUsecase defines the interface for reservation management use cases
type BookingUsecase interface {
	CreateBooking(ctx context.Context, userID, email string, input *CreateBookingInput) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error)
}
