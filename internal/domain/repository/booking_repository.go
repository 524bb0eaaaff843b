package repository

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// BookingRepository persists table reservations.
type BookingRepository interface {
	// Create persists a new booking and returns its storage ID.
	Create(ctx context.Context, booking *entity.Booking) (string, error)

	// ListForUser retrieves all bookings for a user, newest first.
	ListForUser(ctx context.Context, userID string) ([]*entity.Booking, error)
}
