// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The storage layer assigns the integer ID; the GUID is an opaque external
// identifier minted at registration.
type User struct {
	ID               int64      // Storage-assigned identity, also the token subject.
	Guid             *uuid.UUID // Opaque external identifier, generated once at registration.
	FirstName        string
	LastName         string
	Email            string // Login identifier. Unique at the storage layer.
	PhoneNumber      string // Unique at the storage layer.
	Credential       Credential
	Credits          int       // Remaining resume-parse credits.
	RegistrationDate time.Time // When the account was created.
}

// Credential is the stored password material. Hash and salt are only ever
// produced together by the password hasher; the plaintext is discarded after
// hashing and never persisted or logged.
type Credential struct {
	PasswordHash []byte // 64-byte HMAC-SHA512 digest.
	PasswordSalt []byte // 128-byte random HMAC key.
}

// IsSet reports whether the credential carries both hash and salt.
func (c Credential) IsSet() bool {
	return len(c.PasswordHash) > 0 && len(c.PasswordSalt) > 0
}
