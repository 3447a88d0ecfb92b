// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies stored password credentials.
// This abstracts the underlying keyed-hash construction, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a 64-byte digest and a fresh 128-byte random salt from a
	// plaintext password. The salt doubles as the HMAC key and is never
	// derived from the password itself.
	Hash(password string) (hash, salt []byte, err error)

	// Verify recomputes the digest for the plaintext against the stored salt
	// and compares it with the stored hash in constant time.
	Verify(password string, storedHash, storedSalt []byte) (bool, error)
}
