// Package middleware contains echo middleware specific to the API server.
package middleware

import (
	"strings"

	"rental/internal/delivery/api/response"
	"rental/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		userID, ok := m.parse(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, userID)

		return next(c)
	}
}

// Identify attaches the caller's identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			if userID, ok := m.parse(authHeader); ok {
				c.Set(contextKeyUserID, userID)
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) parse(authHeader string) (uuid.UUID, bool) {
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return uuid.Nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetViewerID returns the caller's ID, or nil for an anonymous caller.
func GetViewerID(c echo.Context) *uuid.UUID {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}

	return &userID
}
