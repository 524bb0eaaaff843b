package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler serves the reservation endpoints.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler.
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for creating a booking.
type CreateBookingRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Vibe         string `json:"vibe" validate:"omitempty,oneof=dining brunch happy-hour"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string `json:"timeSlot" validate:"required"`
	GuestCount   int    `json:"guestCount" validate:"required,min=1,max=20"`
	SpecialNotes string `json:"specialNotes" validate:"omitempty,max=500"`
}

// BookingResponse is the wire form of one reservation.
type BookingResponse struct {
	ID                 string    `json:"id"`
	BookingNumber      string    `json:"bookingNumber"`
	RestaurantID       string    `json:"restaurantId"`
	RestaurantName     string    `json:"restaurantName"`
	RestaurantLocation string    `json:"restaurantLocation,omitempty"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	GuestCount         int       `json:"guestCount"`
	SpecialNotes       string    `json:"specialNotes,omitempty"`
	DiscountPercentage int       `json:"discountPercentage"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreateBooking reserves a time slot at a restaurant for the caller.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	identity := middleware.IdentityFromEchoContext(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in to manage bookings")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateBookingInput{
		RestaurantID: req.RestaurantID,
		Vibe:         entity.Vibe(req.Vibe),
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		GuestCount:   req.GuestCount,
		SpecialNotes: req.SpecialNotes,
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), identity.UserID, identity.Email, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bookingResponse(booking), "Booking created successfully")
}

// GetUserBookings returns the caller's bookings, newest first.
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	identity := middleware.IdentityFromEchoContext(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in to manage bookings")
	}

	bookings, err := h.bookingUC.GetUserBookings(c.Request().Context(), identity.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingResponse(b))
	}

	return response.Success(c, http.StatusOK, items, "Bookings retrieved successfully")
}

// handleAppError handles application errors.
func (h *BookingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func bookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		BookingNumber:      b.BookingNumber,
		RestaurantID:       b.RestaurantID,
		RestaurantName:     b.RestaurantName,
		RestaurantLocation: b.RestaurantLocation,
		Date:               b.Date,
		Time:               b.Time,
		GuestCount:         b.GuestCount,
		SpecialNotes:       b.SpecialNotes,
		DiscountPercentage: b.DiscountPercentage,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
	}
}
