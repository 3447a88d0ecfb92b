package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/delivery/http/response"
	"linkup/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid, unexpired token and puts the
// token's subject id on the context for handlers. All invalid tokens get the
// same response; the specific reason only goes to the log.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			m.logger.Warn("Token rejected",
				slog.String("path", c.Request().URL.Path),
				slog.String("ip", c.RealIP()),
				slog.Any("error", err))

			return response.Error(c, http.StatusUnauthorized, "Invalid token")
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		return next(c)
	}
}

// UserID extracts the authenticated user id set by Authenticate.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(deliverycontext.KeyUserID)).(int64)

	return id, ok
}
