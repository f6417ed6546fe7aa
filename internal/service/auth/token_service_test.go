package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugomed/nugomed-api/internal/config"
)

const testSecret = "test-jwt-secret-thats-at-least-32-chars"

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 30,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("secret too short", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            "short",
			TokenLifetimeMinutes: 30,
		})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewTokenServiceWithTime(testSecret, 30*time.Minute, func() time.Time { return now })

	token, err := svc.IssueToken(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, now.Add(30*time.Minute), claims.ExpiresAt, time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now().Add(-time.Hour)
	clock := issuedAt
	svc := NewTokenServiceWithTime(testSecret, 30*time.Minute, func() time.Time { return clock })

	token, err := svc.IssueToken(context.Background(), "alice")
	require.NoError(t, err)

	// One second before expiry the token still validates.
	clock = issuedAt.Add(30*time.Minute - time.Second)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)

	// One second past expiry it does not.
	clock = issuedAt.Add(30*time.Minute + time.Second)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenServiceWithTime(testSecret, 30*time.Minute, time.Now)

	token, err := svc.IssueToken(context.Background(), "alice")
	require.NoError(t, err)

	// Flip one character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	mid := len(payload) / 2
	if payload[mid] == 'A' {
		payload[mid] = 'B'
	} else {
		payload[mid] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.ValidateToken(context.Background(), tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenServiceWithTime(testSecret, 30*time.Minute, time.Now)
	verifier := NewTokenServiceWithTime(
		"a-completely-different-32-char-secret!!", 30*time.Minute, time.Now)

	token, err := issuer.IssueToken(context.Background(), "alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenServiceWithTime(testSecret, 30*time.Minute, time.Now)

	for _, token := range []string{"", "garbage", "a.b.c", "a.b"} {
		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestIssueToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := NewTokenServiceWithTime(testSecret, 30*time.Minute, time.Now)

	first, err := svc.IssueToken(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.IssueToken(context.Background(), "alice")
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(context.Background(), first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
