// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/response"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "The input object cannot be null or empty")
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "First name, last name, email, phone number and password are mandatory")
	}
	input.ClientIP = c.RealIP()

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewUserResponse(output.User, output.Token, output.TokenExpiration))
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "The input object cannot be null or empty")
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Email and password are mandatory")
	}
	input.ClientIP = c.RealIP()

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewUserResponse(output.User, output.Token, output.TokenExpiration))
}

// GetProfile returns the authenticated user's record without a fresh token.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Invalid token")
	}

	user, err := h.uc.GetByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"id":               user.ID,
		"firstName":        user.FirstName,
		"lastName":         user.LastName,
		"email":            user.Email,
		"phoneNumber":      user.PhoneNumber,
		"credits":          user.Credits,
		"registrationDate": user.RegistrationDate,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
