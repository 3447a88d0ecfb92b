package service

import "time"

// TokenService mints and validates the signed bearer tokens that carry a
// user's identity between requests. Tokens are self-contained; no session
// state is kept server-side.
type TokenService interface {
	// Issue builds a signed token identifying the user id, expiring six
	// calendar months from now.
	Issue(userID int64) (token string, expiresAt time.Time, err error)

	// Validate checks signature and expiry and returns the embedded user id.
	// All failures are rejects; the error distinguishes the reason for logs.
	Validate(token string) (int64, error)
}
