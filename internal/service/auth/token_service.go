package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and validating stateless
// bearer tokens. Tokens are self-describing and never persisted; there is
// no server-side revocation, so a compromised token stays valid until its
// natural expiry. That trade-off is accepted.
type TokenService interface {
	// IssueToken creates a signed token bound to the given username.
	// Returns the encoded token string or an error if signing fails.
	IssueToken(ctx context.Context, username string) (string, error)

	// ValidateToken checks the token's signature and expiry and extracts
	// the claims. All rejection causes surface as ErrInvalidToken or
	// ErrExpiredToken; callers presenting failures to clients must not
	// distinguish between the two.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a bearer token.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string `json:"sub,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is the unique token identifier (jti), useful for log correlation.
	ID string `json:"jti,omitempty"`
}
