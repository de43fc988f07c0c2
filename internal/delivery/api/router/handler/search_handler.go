package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"rental/internal/delivery/api/response"
	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/calendar"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/service"
	"rental/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Geocoder       service.Geocoder
	Logger         *slog.Logger
}

// SearchHandler serves the availability search.
type SearchHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	geocoder       service.Geocoder
	logger         *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		availabilityUC: params.AvailabilityUC,
		geocoder:       params.Geocoder,
		logger:         params.Logger,
	}
}

// SearchResponse lists the properties free for the requested stay.
type SearchResponse struct {
	AvailableProperties []AvailablePropertyResponse `json:"available_properties"`

	// RadiusApplied is false when no point was given or the place could not be resolved.
	RadiusApplied bool `json:"radius_applied"`
}

// Search handles GET /search.
//
// The point comes from lat/lng when both are present, otherwise from place_id.
// A place that cannot be resolved degrades the search to the whole catalog.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	dates, err := calendar.ParseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	radius, err := parseOptionalFloat(c.QueryParam("radius_miles"))
	if err != nil || radius < 0 || math.IsNaN(radius) {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("radius_miles: must be a non-negative number"))
	}

	point, err := h.searchPoint(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results, err := h.availabilityUC.Search(ctx, &usecase.SearchInput{
		StartDate:   dates.Start,
		EndDate:     dates.End,
		Point:       point,
		RadiusMiles: radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := SearchResponse{
		AvailableProperties: make([]AvailablePropertyResponse, 0, len(results)),
		RadiusApplied:       point != nil,
	}
	for _, r := range results {
		out.AvailableProperties = append(out.AvailableProperties, AvailablePropertyResponse{
			PropertyResponse: toPropertyResponse(r.Property),
			IsAvailable:      r.IsAvailable,
			DistanceMiles:    r.DistanceMiles,
		})
	}

	logger.Debug("Search served",
		slog.String("range", dates.String()),
		slog.Int("matches", len(out.AvailableProperties)),
		slog.Bool("radius_applied", out.RadiusApplied))

	return response.Success(c, http.StatusOK, out)
}

// searchPoint returns nil when the search should not be radius filtered.
func (h *SearchHandler) searchPoint(c echo.Context) (*geo.Coordinate, error) {
	latRaw, lngRaw := c.QueryParam("lat"), c.QueryParam("lng")
	if latRaw != "" || lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lat, lng: both must be numbers")
		}
		point := &geo.Coordinate{Lat: lat, Lng: lng}
		if err := point.Validate(); err != nil {
			return nil, err
		}

		return point, nil
	}

	placeID := c.QueryParam("place_id")
	if placeID == "" {
		return nil, nil
	}

	ctx := c.Request().Context()
	point, err := h.geocoder.Resolve(ctx, placeID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Place could not be resolved, searching without radius",
			slog.String("place_id", placeID),
			slog.Any("error", err))

		return nil, nil
	}

	return point, nil
}

func parseOptionalFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}
