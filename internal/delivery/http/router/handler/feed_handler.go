// Package handler contains the echo HTTP handlers of the delivery layer.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/usecase"
	"bitefeed/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXClientID identifies an anonymous browsing session so that rapid
// re-requests from the same client collapse into one feed session.
const HeaderXClientID = "X-Client-Id"

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC   usecase.FeedUsecase
	SavedUC  usecase.SavedUsecase
	Sessions *impl.SessionRegistry
	Slots    usecase.SlotResolver
	Location service.LocationProvider
	Logger   *slog.Logger
}

// FeedHandler serves the browse feed and restaurant detail endpoints.
type FeedHandler struct {
	feedUC   usecase.FeedUsecase
	savedUC  usecase.SavedUsecase
	sessions *impl.SessionRegistry
	slots    usecase.SlotResolver
	location service.LocationProvider
	logger   *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler.
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC:   params.FeedUC,
		savedUC:  params.SavedUC,
		sessions: params.Sessions,
		slots:    params.Slots,
		location: params.Location,
		logger:   params.Logger,
	}
}

// RestaurantResponse is the wire form of one feed card.
type RestaurantResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Cuisine            string   `json:"cuisine"`
	Cuisines           []string `json:"cuisines,omitempty"`
	Location           string   `json:"location"`
	Address            string   `json:"address,omitempty"`
	Description        string   `json:"description"`
	VideoURL           string   `json:"videoUrl,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	PriceRange         string   `json:"priceRange,omitempty"`
	IsPopular          bool     `json:"isPopular,omitempty"`
	Vibes              []string `json:"vibes"`
	DiscountPercentage int      `json:"discountPercentage"`
	TimeSlots          []string `json:"timeSlots"`
	HappyHourDeal      string   `json:"happyHourDeal,omitempty"`
	Distance           *float64 `json:"distance,omitempty"`
	Saved              bool     `json:"saved"`
}

// FeedResponse is the wire form of one composed feed.
type FeedResponse struct {
	Vibe        string               `json:"vibe"`
	Cuisine     string               `json:"cuisine,omitempty"`
	Theme       string               `json:"theme,omitempty"`
	Area        string               `json:"area"`
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// GetFeed composes the browse feed for the requested vibe, cuisine and theme.
// Requests from the same client supersede each other: a response is only the
// latest feed that client asked for, never a stale one that finished late.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	query := entityQuery(c)

	origin, areaLabel, ok := h.resolveOrigin(c)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng must be decimal degrees")
	}
	query.Origin = origin

	session := h.sessions.For(h.clientKey(c))

	result, applied, err := session.Compose(c.Request().Context(), query)
	if !applied {
		// A newer request from the same client took over; serve whatever
		// that request produced instead of this one's result.
		if current := session.Current(); current != nil {
			result = current
			err = nil
		}
	}
	if err != nil {
		return h.handleAppError(c, err)
	}

	identity := middleware.IdentityFromEchoContext(c)

	items := make([]RestaurantResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, h.restaurantResponse(c, item.Restaurant, result.Query.Vibe, item.DistanceMiles, identity))
	}

	data := FeedResponse{
		Vibe:        string(result.Query.Vibe),
		Cuisine:     result.Query.Cuisine,
		Theme:       result.Query.Theme,
		Area:        areaLabel,
		Restaurants: items,
	}

	return response.Success(c, http.StatusOK, data, "Feed composed successfully")
}

// BookingOptionResponse is the per-vibe booking plan on the detail view.
type BookingOptionResponse struct {
	Description        string   `json:"description,omitempty"`
	TimeSlots          []string `json:"timeSlots"`
	DiscountPercentage int      `json:"discountPercentage"`
}

// RestaurantDetailResponse is the wire form of the restaurant detail view.
type RestaurantDetailResponse struct {
	RestaurantResponse

	BookingOptions map[string]BookingOptionResponse `json:"bookingOptions"`
}

// GetRestaurant returns one restaurant with its booking plan for every vibe
// it participates in.
func (h *FeedHandler) GetRestaurant(c echo.Context) error {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		return response.BadRequest(c, "INVALID_ID", "Restaurant ID is required")
	}

	restaurant, err := h.feedUC.GetRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	identity := middleware.IdentityFromEchoContext(c)

	options := make(map[string]BookingOptionResponse, len(restaurant.Vibes))
	for _, vibe := range restaurant.Vibes {
		plan := h.slots.Resolve(restaurant, vibe)

		description := restaurant.Description
		if details, ok := restaurant.DetailsFor(vibe); ok && details.Description != "" {
			description = details.Description
		}

		options[string(vibe)] = BookingOptionResponse{
			Description:        description,
			TimeSlots:          plan.TimeSlots,
			DiscountPercentage: plan.DiscountPercentage,
		}
	}

	data := RestaurantDetailResponse{
		RestaurantResponse: h.restaurantResponse(c, restaurant, "", nil, identity),
		BookingOptions:     options,
	}

	return response.Success(c, http.StatusOK, data, "Restaurant retrieved successfully")
}

func (h *FeedHandler) restaurantResponse(c echo.Context, r *entity.Restaurant, vibe entity.Vibe, distance *float64, identity *service.Identity) RestaurantResponse {
	plan := h.slots.Resolve(r, vibe)

	description := r.Description
	if details, ok := r.DetailsFor(vibe); ok && details.Description != "" {
		description = details.Description
	}

	vibes := make([]string, 0, len(r.Vibes))
	for _, v := range r.Vibes {
		vibes = append(vibes, string(v))
	}

	saved := false
	if identity != nil {
		saved = h.savedUC.IsSaved(identity.UserID, r.ID)
	}

	return RestaurantResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Cuisine:            r.PrimaryCuisine,
		Cuisines:           r.Cuisines,
		Location:           r.Location,
		Address:            r.Address,
		Description:        description,
		VideoURL:           r.VideoURL,
		ImageURL:           r.ImageURL,
		Rating:             r.Rating,
		PriceRange:         string(r.PriceTier),
		IsPopular:          r.IsPopular,
		Vibes:              vibes,
		DiscountPercentage: plan.DiscountPercentage,
		TimeSlots:          plan.TimeSlots,
		HappyHourDeal:      r.HappyHourDeal,
		Distance:           distance,
		Saved:              saved,
	}
}

// resolveOrigin picks the proximity origin for the request: explicit
// coordinates win, then a named area, then the provider's default. A denied
// or missing device location never fails the feed; only malformed
// coordinates do.
func (h *FeedHandler) resolveOrigin(c echo.Context) (*orb.Point, string, bool) {
	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lng")
	if latParam != "" && lonParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lon, lonErr := strconv.ParseFloat(lonParam, 64)
		if latErr != nil || lonErr != nil {
			return nil, "", false
		}

		pt := orb.Point{lon, lat}

		return &pt, h.location.ReverseGeocode(pt), true
	}

	if area := c.QueryParam("area"); area != "" {
		pt, ok := h.location.Resolve(area)
		if !ok {
			fallback := h.location.DefaultOrigin()

			return &fallback, h.location.ReverseGeocode(fallback), true
		}

		return &pt, area, true
	}

	origin := h.location.DefaultOrigin()

	return &origin, h.location.ReverseGeocode(origin), true
}

// clientKey picks the feed session key: the signed-in user, else the
// client-supplied session header, else the caller's network address.
func (h *FeedHandler) clientKey(c echo.Context) string {
	if identity := middleware.IdentityFromEchoContext(c); identity != nil {
		return identity.UserID
	}
	if clientID := c.Request().Header.Get(HeaderXClientID); clientID != "" {
		return clientID
	}

	return c.RealIP()
}

// handleAppError handles application errors.
func (h *FeedHandler) handleAppError(c echo.Context, err error) error {
	if errors.Is(err, impl.ErrUnknownVibe) {
		return response.BadRequest(c, "INVALID_VIBE", "Unknown vibe")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func entityQuery(c echo.Context) entity.FeedQuery {
	return entity.FeedQuery{
		Vibe:    entity.Vibe(c.QueryParam("vibe")),
		Cuisine: c.QueryParam("cuisine"),
		Theme:   c.QueryParam("theme"),
	}
}
