// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"strings"

	"linkup/internal/domain/errors"
	"linkup/internal/domain/service"

	pkgerrors "github.com/pkg/errors"
)

const (
	// hashSize is the HMAC-SHA512 digest length.
	hashSize = sha512.Size
	// saltSize is the length of the random HMAC key stored as the salt.
	saltSize = 128
)

// hmacHasher derives password credentials with HMAC-SHA512 keyed by a
// 128-byte random salt. The salt is fresh key material per credential and is
// never a function of the password.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// Hash derives a 64-byte digest and a fresh 128-byte salt from the password.
func (h *hmacHasher) Hash(password string) (hash, salt []byte, err error) {
	if strings.TrimSpace(password) == "" {
		return nil, nil, errors.ErrInvalidInput.WrapMessage("password is empty or whitespace")
	}

	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, pkgerrors.Wrap(err, "failed to generate salt")
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil), salt, nil
}

// Verify recomputes the digest over the password using the stored salt as the
// HMAC key and compares it with the stored hash in constant time.
func (h *hmacHasher) Verify(password string, storedHash, storedSalt []byte) (bool, error) {
	if strings.TrimSpace(password) == "" {
		return false, errors.ErrInvalidInput.WrapMessage("password is empty or whitespace")
	}
	if len(storedHash) != hashSize {
		return false, errors.ErrMalformedCredential.WrapMessage("invalid length of password hash (64 bytes expected)")
	}
	if len(storedSalt) != saltSize {
		return false, errors.ErrMalformedCredential.WrapMessage("invalid length of password salt (128 bytes expected)")
	}

	mac := hmac.New(sha512.New, storedSalt)
	mac.Write([]byte(password))

	return hmac.Equal(mac.Sum(nil), storedHash), nil
}
