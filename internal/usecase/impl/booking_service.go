package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "bitefeed/internal/delivery/context"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
	slots    usecase.SlotResolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookings repository.BookingRepository,
	catalog repository.CatalogRepository,
	slots usecase.SlotResolver,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookings: bookings,
		catalog:  catalog,
		slots:    slots,
		logger:   logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking validates the input, denormalizes the restaurant into the
// booking, resolves the discount for the requested vibe and persists the
// booking as pending with the flat commission attached.
func (srv *bookingService) CreateBooking(ctx context.Context, userID, email string, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	restaurant, err := srv.catalog.FetchByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to fetch restaurant")
	}

	now := srv.now()
	booking := &entity.Booking{
		ID:                 uuid.New().String(),
		BookingNumber:      newBookingNumber(now),
		RestaurantID:       restaurant.ID,
		RestaurantName:     restaurant.Name,
		RestaurantLocation: restaurant.Location,
		UserID:             userID,
		UserEmail:          email,
		Date:               input.Date,
		Time:               input.TimeSlot,
		GuestCount:         input.GuestCount,
		SpecialNotes:       input.SpecialNotes,
		DiscountPercentage: srv.slots.Resolve(restaurant, input.Vibe).DiscountPercentage,
		Status:             entity.BookingPending,
		Commission:         entity.BookingCommission,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := srv.bookings.Create(ctx, booking); err != nil {
		srv.log(ctx).Error("booking write failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrBookingCreateFailed, err.Error())
	}

	srv.log(ctx).Info("booking created",
		slog.String("booking_number", booking.BookingNumber),
		slog.String("restaurant_id", booking.RestaurantID))

	return booking, nil
}

// GetUserBookings retrieves all bookings for a user, newest first.
func (srv *bookingService) GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	bookings, err := srv.bookings.ListForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

func validateBookingInput(input *usecase.CreateBookingInput) error {
	switch {
	case input == nil:
		return errors.Wrap(domainerrors.ErrBookingInvalid, "missing input")
	case input.RestaurantID == "":
		return errors.Wrap(domainerrors.ErrBookingInvalid, "missing restaurant id")
	case input.Date == "":
		return errors.Wrap(domainerrors.ErrBookingInvalid, "missing date")
	case input.TimeSlot == "":
		return errors.Wrap(domainerrors.ErrBookingInvalid, "missing time slot")
	case input.GuestCount < 1:
		return errors.Wrap(domainerrors.ErrBookingInvalid, "guest count must be at least 1")
	}

	return nil
}

// newBookingNumber builds the user-facing reference, e.g. "VB-2025-345637".
func newBookingNumber(now time.Time) string {
	return fmt.Sprintf("VB-%d-%06d", now.Year(), uuid.New().ID()%1_000_000)
}
