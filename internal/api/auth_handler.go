package api

import (
	"errors"
	"net/http"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/service/auth"
	"github.com/nugomed/nugomed-api/internal/store"
)

// AuthHandler serves user registration, login, and the current-user lookup.
type AuthHandler struct {
	userStore     store.UserStore
	authenticator *auth.Authenticator
}

// NewAuthHandler creates a new AuthHandler with its dependencies.
func NewAuthHandler(userStore store.UserStore, authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		userStore:     userStore,
		authenticator: authenticator,
	}
}

// Token handles POST /token. The payload is form-encoded (OAuth2 password
// flow shape): fields "username" and "password". Both unknown usernames and
// wrong passwords get the same 401 so the response does not reveal which
// credential was wrong.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form payload")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Field required")
		return
	}

	token, err := h.authenticator.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			shared.RespondWithError(w, r,
				http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Internal server error", err)
		return
	}

	log.Debug("login succeeded")
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register handles POST /users. The plaintext password travels only as far
// as the user store, which hashes it before persisting.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed")
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r,
				http.StatusConflict, "Username already registered")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Internal server error", err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Me handles GET /users/me, returning the user resolved by the auth
// middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		// The auth middleware guarantees a user here; missing one means a
		// routing mistake, not a client error.
		shared.RespondWithError(w, r,
			http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
