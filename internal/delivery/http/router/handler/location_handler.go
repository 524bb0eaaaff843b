package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Location service.LocationProvider
	Logger   *slog.Logger
}

// LocationHandler serves the area-selection endpoints.
type LocationHandler struct {
	location service.LocationProvider
	logger   *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		location: params.Location,
		logger:   params.Logger,
	}
}

// AreaResponse is the wire form of one selectable area.
type AreaResponse struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetAreas lists the areas a client can browse from.
func (h *LocationHandler) GetAreas(c echo.Context) error {
	areas := h.location.Areas()

	items := make([]AreaResponse, 0, len(areas))
	for _, area := range areas {
		items = append(items, AreaResponse{
			Label:     area.Label,
			Latitude:  area.Point.Lat(),
			Longitude: area.Point.Lon(),
		})
	}

	return response.Success(c, http.StatusOK, items, "Areas retrieved successfully")
}

// GetNearestArea maps device coordinates to the closest known area label.
func (h *LocationHandler) GetNearestArea(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lonErr != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng must be decimal degrees")
	}

	label := h.location.ReverseGeocode(orb.Point{lon, lat})

	return response.Success(c, http.StatusOK, map[string]string{"label": label}, "Nearest area resolved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
