package handler

import (
	"log/slog"
	"net/http"

	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/response"
	"rental/internal/domain/geo"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC   usecase.PropertyUsecase
	ProjectionUC usecase.ProjectionUsecase
	Logger       *slog.Logger
}

// PropertyHandler serves the property catalog and per-property calendars.
type PropertyHandler struct {
	propertyUC   usecase.PropertyUsecase
	projectionUC usecase.ProjectionUsecase
	logger       *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC:   params.PropertyUC,
		projectionUC: params.ProjectionUC,
		logger:       params.Logger,
	}
}

// CreatePropertyRequest represents the request body for a new listing.
// Latitude and longitude win over place_id when both are given.
type CreatePropertyRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	LocationName  string   `json:"location_name" validate:"max=200"`
	PlaceID       string   `json:"place_id" validate:"max=512"`
	Latitude      *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
}

// CreateProperty handles POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreatePropertyInput{
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		LocationName:  req.LocationName,
		PlaceID:       req.PlaceID,
	}
	if req.Latitude != nil && req.Longitude != nil {
		input.Coordinate = &geo.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	property, err := h.propertyUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPropertyResponse(property))
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.propertyUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponses(properties))
}

// GetProperty handles GET /properties/:id. The booking section depends on who asks.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	detail, err := h.projectionUC.PropertyDetail(c.Request().Context(), propertyID, middleware.GetViewerID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PropertyDetailResponse{
		Property:                 toPropertyResponse(detail.Property),
		Reviews:                  toReviewResponses(detail.Reviews),
		ViewerIsOwner:            detail.ViewerIsOwner,
		PropertyBookingsResponse: toPropertyBookings(detail.Bookings, detail.Anonymous),
	})
}

// GetPropertyBookings handles GET /properties/:id/bookings
func (h *PropertyHandler) GetPropertyBookings(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	viewerID := middleware.GetViewerID(c)
	bookings, err := h.projectionUC.ProjectPropertyBookings(c.Request().Context(), propertyID, viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyBookings(bookings, viewerID == nil))
}
