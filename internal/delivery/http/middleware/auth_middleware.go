// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the resolved user ID
// to the request context. Expired, malformed and tampered tokens all produce
// the same 401 so callers cannot probe the cause.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "TOKEN_MISSING", "Unauthorized: Token missing.")
		}

		userID, err := m.tokenSvc.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Unauthorized: Token invalid.")
		}

		// Thread the identity through the request context; it dies with the request.
		ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
