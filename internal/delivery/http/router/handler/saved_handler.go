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

// SavedHandlerParams holds dependencies for SavedHandler, injected by Fx.
type SavedHandlerParams struct {
	fx.In

	SavedUC usecase.SavedUsecase
	FeedUC  usecase.FeedUsecase
	Logger  *slog.Logger
}

// SavedHandler serves the saved-restaurants endpoints.
type SavedHandler struct {
	savedUC usecase.SavedUsecase
	feedUC  usecase.FeedUsecase
	logger  *slog.Logger
}

// NewSavedHandler is the constructor for SavedHandler.
func NewSavedHandler(params SavedHandlerParams) *SavedHandler {
	return &SavedHandler{
		savedUC: params.SavedUC,
		feedUC:  params.FeedUC,
		logger:  params.Logger,
	}
}

// SavedRestaurantResponse is the wire form of one saved-list card.
type SavedRestaurantResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Cuisine            string    `json:"cuisine"`
	Location           string    `json:"location"`
	VideoURL           string    `json:"videoUrl,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	DiscountPercentage *int      `json:"discountPercentage,omitempty"`
	HappyHourDeals     []string  `json:"happyHourDeals,omitempty"`
	Offers             []string  `json:"offers,omitempty"`
	IsFavorite         bool      `json:"isFavorite"`
	SavedAt            time.Time `json:"savedAt"`
}

// ToggleSavedResponse reports the membership state after a toggle.
type ToggleSavedResponse struct {
	RestaurantID string `json:"restaurantId"`
	Saved        bool   `json:"saved"`
}

// GetSaved returns the caller's saved restaurants, newest first.
func (h *SavedHandler) GetSaved(c echo.Context) error {
	identity := middleware.IdentityFromEchoContext(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in to manage saved restaurants")
	}

	saved, err := h.savedUC.LoadSaved(c.Request().Context(), identity.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	items := make([]SavedRestaurantResponse, 0, len(saved))
	for _, s := range saved {
		items = append(items, savedRestaurantResponse(s))
	}

	return response.Success(c, http.StatusOK, items, "Saved restaurants retrieved successfully")
}

// ToggleSaved flips the saved state of one restaurant for the caller. Saving
// freezes a snapshot of the restaurant; unsaving removes it.
func (h *SavedHandler) ToggleSaved(c echo.Context) error {
	identity := middleware.IdentityFromEchoContext(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in to manage saved restaurants")
	}

	restaurantID := c.Param("restaurantID")
	if restaurantID == "" {
		return response.BadRequest(c, "INVALID_ID", "Restaurant ID is required")
	}

	restaurant, err := h.feedUC.GetRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	saved, err := h.savedUC.ToggleSave(c.Request().Context(), identity.UserID, restaurant)
	if err != nil {
		return h.handleAppError(c, err)
	}

	data := ToggleSavedResponse{RestaurantID: restaurantID, Saved: saved}

	return response.Success(c, http.StatusOK, data, "Saved state toggled successfully")
}

// handleAppError handles application errors.
func (h *SavedHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func savedRestaurantResponse(s entity.SavedRestaurant) SavedRestaurantResponse {
	return SavedRestaurantResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Cuisine:            s.Cuisine,
		Location:           s.Location,
		VideoURL:           s.VideoURL,
		ImageURL:           s.ImageURL,
		DiscountPercentage: s.DiscountPercentage,
		HappyHourDeals:     s.HappyHourDeals,
		Offers:             s.Offers,
		IsFavorite:         s.IsFavorite,
		SavedAt:            s.SavedAt,
	}
}
