package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a back-office operator account. It contains the login
// identity and authentication details; there are no per-user roles.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, only populated transiently during registration
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and plaintext password.
// It generates the user ID and timestamps and validates the input.
//
// The caller is responsible for hashing the password before the user is
// stored; NewUser never hashes.
func NewUser(username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User carries a usable identity and credential.
// A user loaded from the store has no plaintext password and must carry a
// hash instead.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 64 {
		return ErrUsernameTooLong
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt ignores input beyond 72 bytes, so longer passwords would
		// silently lose entropy.
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
		return nil
	}

	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
