package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, exp, err := tm.Issue("account-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	subject, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", subject)
}

func TestTokenExpiry(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	issuedAt := time.Now()
	tm.now = func() time.Time { return issuedAt }
	token, _, err := tm.Issue("account-123")
	require.NoError(t, err)

	// Just before the horizon the token still verifies.
	tm.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	subject, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", subject)

	// Past the horizon it is expired, not merely invalid.
	tm.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = tm.Parse(token)
	require.ErrorIs(t, err, ErrExpiredToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("account-123")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageInput(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := tm.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.Issue("account-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*30*time.Hour), exp, 5*time.Second)
}
