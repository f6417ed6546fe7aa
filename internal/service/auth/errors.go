package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidCredentials indicates a failed login. It is deliberately
	// uniform: callers cannot tell an unknown username from a wrong
	// password.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, or references a user that no longer exists.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired. HTTP boundaries
	// must present it to clients identically to ErrInvalidToken.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
