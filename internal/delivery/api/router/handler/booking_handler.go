package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/response"
	"rental/internal/domain/calendar"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC    usecase.BookingUsecase
	ProjectionUC usecase.ProjectionUsecase
	Logger       *slog.Logger
}

// BookingHandler serves the renter's side of the booking ledger.
type BookingHandler struct {
	bookingUC    usecase.BookingUsecase
	projectionUC usecase.ProjectionUsecase
	logger       *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC:    params.BookingUC,
		projectionUC: params.ProjectionUC,
		logger:       params.Logger,
	}
}

// CreateBookingRequest represents the request body for a reservation.
// Dates are inclusive calendar days in YYYY-MM-DD form.
type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

// UpdateBookingRequest moves a booking. Omitted dates keep their value.
type UpdateBookingRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	dates, err := calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), &usecase.CreateBookingInput{
		PropertyID: uuid.MustParse(req.PropertyID),
		RenterID:   renterID,
		StartDate:  dates.Start,
		EndDate:    dates.End,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking))
}

// UpdateBooking handles PATCH /api/v1/bookings/:id
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	input := &usecase.UpdateBookingInput{}
	if input.StartDate, err = parseOptionalDate("start_date", req.StartDate); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.EndDate, err = parseOptionalDate("end_date", req.EndDate); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.Update(c.Request().Context(), bookingID, renterID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking))
}

// DeleteBooking handles DELETE /api/v1/bookings/:id
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	if err := h.bookingUC.Delete(c.Request().Context(), bookingID, renterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListMyBookings handles GET /api/v1/bookings and groups the caller's bookings by property.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	booked, err := h.projectionUC.ProjectUserBookedProperties(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookedPropertyResponses(booked))
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	d, err := calendar.ParseDate(field, *raw)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
