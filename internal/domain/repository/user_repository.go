// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"linkup/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when an insert trips a storage-level uniqueness
// constraint on email or phone number. The constraint is the authoritative
// duplicate guard; pre-insert existence checks are an optimization only.
var ErrDuplicateUser = errors.New("user with the same email or phone number already exists")

// Repository describes the generic persistence capabilities shared by all
// entities. Entity-specific repositories compose it and layer their own
// lookups on top.
type Repository[T any] interface {
	// FindByID retrieves a single record by its storage-assigned id.
	FindByID(ctx context.Context, id int64) (*T, error)

	// FindAll retrieves every record of the entity type.
	FindAll(ctx context.Context) ([]*T, error)

	// Create persists a new record and fills in storage-assigned fields.
	Create(ctx context.Context, record *T) error

	// Update modifies an existing record.
	Update(ctx context.Context, record *T) error

	// Delete removes a record by id.
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	Repository[entity.User]

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByPhoneOrEmail reports whether any user matches the phone number
	// or the email address.
	ExistsByPhoneOrEmail(ctx context.Context, phoneNumber, email string) (bool, error)

	// DecrementCredits atomically subtracts one parse credit from the user.
	DecrementCredits(ctx context.Context, id int64) error
}
