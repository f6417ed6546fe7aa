package auth

import (
	"context"
	"errors"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/redact"
	"github.com/nugomed/nugomed-api/internal/store"
)

// Authenticator implements the login and current-user resolution flow on
// top of the user store, the password hasher, and the token service.
type Authenticator struct {
	userStore    store.UserStore
	hasher       PasswordHasher
	tokenService TokenService
}

// NewAuthenticator creates an Authenticator with the given dependencies.
func NewAuthenticator(
	userStore store.UserStore,
	hasher PasswordHasher,
	tokenService TokenService,
) *Authenticator {
	return &Authenticator{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// Authenticate checks the username/password pair against the credential
// store. Both an unknown username and a wrong password fail with the same
// ErrInvalidCredentials so the response does not reveal which one it was.
// Store failures other than "not found" are passed through for the boundary
// to translate to a server error.
func (a *Authenticator) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", "error", redact.Error(err))
		return nil, err
	}

	if err := a.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the credentials and, on success, issues a bearer
// token bound to the username.
func (a *Authenticator) Login(
	ctx context.Context,
	username, password string,
) (string, error) {
	user, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return a.tokenService.IssueToken(ctx, user.Username)
}

// ResolveUser validates the bearer token and resolves its subject to a
// concrete user record. A token whose subject no longer exists is rejected
// with ErrInvalidToken even when signature and expiry are fine.
func (a *Authenticator) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenService.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.userStore.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("token subject no longer exists", "token_id", claims.ID)
			return nil, ErrInvalidToken
		}
		log.Error("failed to resolve token subject", "error", redact.Error(err))
		return nil, err
	}

	return user, nil
}
