package domain

import (
	"errors"
	"time"
)

var ErrTokenInvalid = errors.New("token invalid or expired")

// IdentityClaim is the identity assertion embedded in a session token.
// The service layer only ever consumes Email, comparing it against the
// email named in an identity-scoped route.
type IdentityClaim struct {
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
