package model

import (
	"time"

	"bitefeed/internal/domain/entity"
)

// BookingModel is the Firestore-specific struct for the 'bookings'
// collection.
type BookingModel struct {
	BookingNumber      string    `firestore:"bookingNumber"`
	RestaurantID       string    `firestore:"restaurantId"`
	RestaurantName     string    `firestore:"restaurantName"`
	RestaurantLocation string    `firestore:"restaurantLocation"`
	UserID             string    `firestore:"userId"`
	UserEmail          string    `firestore:"userEmail"`
	Date               string    `firestore:"date"`
	Time               string    `firestore:"time"`
	GuestCount         int       `firestore:"guestCount"`
	SpecialNotes       string    `firestore:"specialNotes,omitempty"`
	DiscountPercentage int       `firestore:"discountPercentage"`
	Status             string    `firestore:"status"`
	Commission         float64   `firestore:"commission"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

// ToBookingDomain converts the document into the domain entity.
func ToBookingDomain(id string, m *BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:                 id,
		BookingNumber:      m.BookingNumber,
		RestaurantID:       m.RestaurantID,
		RestaurantName:     m.RestaurantName,
		RestaurantLocation: m.RestaurantLocation,
		UserID:             m.UserID,
		UserEmail:          m.UserEmail,
		Date:               m.Date,
		Time:               m.Time,
		GuestCount:         m.GuestCount,
		SpecialNotes:       m.SpecialNotes,
		DiscountPercentage: m.DiscountPercentage,
		Status:             entity.BookingStatus(m.Status),
		Commission:         m.Commission,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromBookingDomain converts a domain entity into the document shape.
func FromBookingDomain(booking *entity.Booking) *BookingModel {
	return &BookingModel{
		BookingNumber:      booking.BookingNumber,
		RestaurantID:       booking.RestaurantID,
		RestaurantName:     booking.RestaurantName,
		RestaurantLocation: booking.RestaurantLocation,
		UserID:             booking.UserID,
		UserEmail:          booking.UserEmail,
		Date:               booking.Date,
		Time:               booking.Time,
		GuestCount:         booking.GuestCount,
		SpecialNotes:       booking.SpecialNotes,
		DiscountPercentage: booking.DiscountPercentage,
		Status:             string(booking.Status),
		Commission:         booking.Commission,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}
