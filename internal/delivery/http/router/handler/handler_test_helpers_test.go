package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "bitefeed/internal/delivery/context"
	"bitefeed/internal/delivery/http/validator"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"
	"bitefeed/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context with the request validator wired the
// same way the server wires it.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// signIn stores an authenticated identity on the context the way the auth
// middleware does.
func signIn(c echo.Context, userID, email string) {
	identity := &service.Identity{UserID: userID, Email: email}
	c.Set(string(deliverycontext.KeyIdentity), identity)
	ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
	c.SetRequest(c.Request().WithContext(ctx))
}

func testRestaurant(id, name string) *entity.Restaurant {
	return &entity.Restaurant{
		ID:                 id,
		Name:               name,
		PrimaryCuisine:     "American",
		Cuisines:           []string{"American"},
		Location:           "Dupont Circle",
		Description:        "Farm to table plates",
		Rating:             4.2,
		IsActive:           true,
		Vibes:              []entity.Vibe{entity.VibeDining},
		Coordinates:        &orb.Point{-77.0434, 38.9097},
		DiscountPercentage: 20,
		TimeSlots:          []string{"18:00", "18:30"},
	}
}

type stubFeedUsecase struct {
	restaurants []*entity.Restaurant
	err         error
}

func (s *stubFeedUsecase) Compose(ctx context.Context, query entity.FeedQuery) (*entity.FeedResult, error) {
	if s.err != nil {
		return nil, s.err
	}

	items := make([]entity.FeedItem, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		items = append(items, entity.FeedItem{Restaurant: r})
	}

	return &entity.FeedResult{Query: query, Items: items}, nil
}

func (s *stubFeedUsecase) GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrNotFound, "restaurant not found")
}

type stubSavedUsecase struct {
	saved     map[string]bool
	savedList []entity.SavedRestaurant
	err       error
}

func newStubSavedUsecase() *stubSavedUsecase {
	return &stubSavedUsecase{saved: make(map[string]bool)}
}

func (s *stubSavedUsecase) ToggleSave(ctx context.Context, userID string, restaurant *entity.Restaurant) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.saved[restaurant.ID] = !s.saved[restaurant.ID]

	return s.saved[restaurant.ID], nil
}

func (s *stubSavedUsecase) IsSaved(userID, restaurantID string) bool {
	return s.saved[restaurantID]
}

func (s *stubSavedUsecase) LoadSaved(ctx context.Context, userID string) ([]entity.SavedRestaurant, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.savedList, nil
}

type stubBookingUsecase struct {
	booking  *entity.Booking
	bookings []*entity.Booking
	input    *usecase.CreateBookingInput
	err      error
}

func (s *stubBookingUsecase) CreateBooking(ctx context.Context, userID, email string, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}

	return s.booking, nil
}

func (s *stubBookingUsecase) GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.bookings, nil
}

type stubLocationProvider struct{}

func (stubLocationProvider) Areas() []service.Area {
	return []service.Area{
		{Label: "Washington DC", Point: orb.Point{-77.0369, 38.9072}},
		{Label: "Georgetown", Point: orb.Point{-77.0723, 38.9076}},
	}
}

func (p stubLocationProvider) Resolve(label string) (orb.Point, bool) {
	for _, area := range p.Areas() {
		if area.Label == label {
			return area.Point, true
		}
	}

	return orb.Point{}, false
}

func (stubLocationProvider) ReverseGeocode(pt orb.Point) string {
	return "Washington DC"
}

func (stubLocationProvider) DefaultOrigin() orb.Point {
	return orb.Point{-77.0369, 38.9072}
}

func newTestFeedHandler(feedUC usecase.FeedUsecase, savedUC usecase.SavedUsecase) *FeedHandler {
	return &FeedHandler{
		feedUC:   feedUC,
		savedUC:  savedUC,
		sessions: impl.NewSessionRegistry(feedUC),
		slots:    impl.NewSlotResolver(),
		location: stubLocationProvider{},
		logger:   newDiscardLogger(),
	}
}

var (
	_ usecase.FeedUsecase      = (*stubFeedUsecase)(nil)
	_ usecase.SavedUsecase     = (*stubSavedUsecase)(nil)
	_ usecase.BookingUsecase   = (*stubBookingUsecase)(nil)
	_ service.LocationProvider = stubLocationProvider{}
)

func mustBooking(id string) *entity.Booking {
	return &entity.Booking{
		ID:                 id,
		BookingNumber:      "VB-2025-345637",
		RestaurantID:       "1",
		RestaurantName:     "Sage Bistro",
		RestaurantLocation: "Downtown DC",
		UserID:             "user-1",
		UserEmail:          "diner@example.com",
		Date:               "2025-03-14",
		Time:               "18:30",
		GuestCount:         2,
		DiscountPercentage: 30,
		Status:             entity.BookingPending,
		Commission:         entity.BookingCommission,
		CreatedAt:          time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC),
	}
}
