// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeedHandler      *handler.FeedHandler
	SavedHandler     *handler.SavedHandler
	BookingHandler   *handler.BookingHandler
	LocationHandler  *handler.LocationHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	feedHandler      *handler.FeedHandler
	savedHandler     *handler.SavedHandler
	bookingHandler   *handler.BookingHandler
	locationHandler  *handler.LocationHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		feedHandler:      params.FeedHandler,
		savedHandler:     params.SavedHandler,
		bookingHandler:   params.BookingHandler,
		locationHandler:  params.LocationHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.loggerMiddleware.Handle)

	// Browsing routes; a signed-in caller gets saved flags, anyone may browse
	browseGroup := e.Group("")
	browseGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		browseGroup.GET("/feed", r.feedHandler.GetFeed)
		browseGroup.GET("/restaurants/:id", r.feedHandler.GetRestaurant)
		browseGroup.GET("/areas", r.locationHandler.GetAreas)
		browseGroup.GET("/areas/nearest", r.locationHandler.GetNearestArea)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/saved", r.savedHandler.GetSaved)
		userGroup.POST("/saved/:restaurantID/toggle", r.savedHandler.ToggleSaved)
		userGroup.GET("/bookings", r.bookingHandler.GetUserBookings)
		userGroup.POST("/bookings", r.bookingHandler.CreateBooking)
	}
}
