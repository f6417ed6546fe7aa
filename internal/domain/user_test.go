package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "longenoughpass")
		require.NoError(t, err)
		assert.NotEqual(t, "", user.ID.String())
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "longenoughpass", user.Password)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"empty username", "", "longenoughpass", ErrEmptyUsername},
		{"username too long", strings.Repeat("a", 65), "longenoughpass", ErrUsernameTooLong},
		{"password too short", "alice", "short", ErrPasswordTooShort},
		{"password too long", "alice", strings.Repeat("p", 73), ErrPasswordTooLong},
		{"empty password", "alice", "", ErrEmptyPassword},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tc.username, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a hash.
	user, err := NewUser("alice", "longenoughpass")
	require.NoError(t, err)

	user.Password = ""
	user.HashedPassword = "$2a$10$somethinghashed"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
