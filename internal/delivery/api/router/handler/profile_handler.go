package handler

import (
	"log/slog"
	"net/http"

	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/response"
	"rental/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProjectionUC usecase.ProjectionUsecase
	Logger       *slog.Logger
}

// ProfileHandler serves the caller's account overview.
type ProfileHandler struct {
	projectionUC usecase.ProjectionUsecase
	logger       *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		projectionUC: params.ProjectionUC,
		logger:       params.Logger,
	}
}

// GetProfile handles GET /api/v1/me
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.projectionUC.Profile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		User:   toUserResponse(profile.User),
		Owned:  toOwnedPropertyResponses(profile.Owned),
		Booked: toBookedPropertyResponses(profile.Booked),
	})
}
