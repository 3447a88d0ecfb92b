// Package response defines the API wire shapes.
package response

import (
	"time"

	"linkup/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// UserResponse is the success payload for register and login.
type UserResponse struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Token           string    `json:"token"`
	TokenExpiration time.Time `json:"tokenExpiration"`
}

// ErrorResponse is the payload for every failure: a single message, nothing
// internal.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a user entity and its session token to the wire shape.
// Credential material never leaves this mapping.
func NewUserResponse(user *entity.User, token string, tokenExpiration time.Time) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		Token:           token,
		TokenExpiration: tokenExpiration,
	}
}

// JSON writes a success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes a failure payload.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Message: message})
}
