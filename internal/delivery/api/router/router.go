// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SearchHandler   *handler.SearchHandler
	PropertyHandler *handler.PropertyHandler
	BookingHandler  *handler.BookingHandler
	ProfileHandler  *handler.ProfileHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	searchHandler   *handler.SearchHandler
	propertyHandler *handler.PropertyHandler
	bookingHandler  *handler.BookingHandler
	profileHandler  *handler.ProfileHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		searchHandler:   params.SearchHandler,
		propertyHandler: params.PropertyHandler,
		bookingHandler:  params.BookingHandler,
		profileHandler:  params.ProfileHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	e.GET("/search", r.searchHandler.Search)

	// Public catalog. A token, when present, widens what the booking views show.
	propertiesGroup := e.Group("/properties")
	propertiesGroup.Use(r.authMiddleware.Identify)
	{
		propertiesGroup.GET("", r.propertyHandler.ListProperties)
		propertiesGroup.GET("/:id", r.propertyHandler.GetProperty)
		propertiesGroup.GET("/:id/bookings", r.propertyHandler.GetPropertyBookings)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.POST("/properties", r.propertyHandler.CreateProperty)
		apiV1.GET("/me", r.profileHandler.GetProfile)
		apiV1.POST("/reviews", r.reviewHandler.CreateReview)
	}

	bookingsGroup := apiV1.Group("/bookings")
	{
		bookingsGroup.POST("", r.bookingHandler.CreateBooking)
		bookingsGroup.GET("", r.bookingHandler.ListMyBookings)
		bookingsGroup.PATCH("/:id", r.bookingHandler.UpdateBooking)
		bookingsGroup.DELETE("/:id", r.bookingHandler.DeleteBooking)
	}
}
