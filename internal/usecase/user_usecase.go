// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"linkup/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// ClientIP is filled in by the delivery layer for diagnostic logging only.
type RegisterInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
	ClientIP    string `json:"-"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	ClientIP string `json:"-"`
}

// --- Output DTOs ---

// AuthOutput returns the user together with a freshly issued session token.
// Both register and login produce it.
type AuthOutput struct {
	User            *entity.User
	Token           string
	TokenExpiration time.Time
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user and issues a session token. Duplicate email
	// or phone number is reported as a conflict.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates by email and password and issues a session token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetByID loads a single user record.
	GetByID(ctx context.Context, userID int64) (*entity.User, error)
}
