package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/repository"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

func newAuthFixture() (*AuthService, repository.UserRepository) {
	users := repository.NewMemoryUserRepository()
	cfg := config.AuthConfig{JWTSecret: "service-test-secret", TokenTTLHours: 1, BcryptCost: bcrypt.MinCost}
	return NewAuthService(cfg, users), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, "Jane", "Jane@Example.com", "pass1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.IsAdmin)

	// Login is case-insensitive on email.
	logged, token, _, err := svc.Login(ctx, "JANE@example.com", "pass1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Mallory", "mallory@example.com", "pass1234")
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Jane", "jane@example.com", "pass1234")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Other Jane", "JANE@EXAMPLE.COM", "different")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", de.Code)
}

// Unknown email and wrong password produce byte-identical failures so a
// caller cannot probe which part was wrong.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Jane", "jane@example.com", "pass1234")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "pass1234")
	require.Error(t, unknownErr)
	_, _, _, wrongErr := svc.Login(ctx, "jane@example.com", "wrong-pass")
	require.Error(t, wrongErr)

	unknownDE := apperrors.ToDomainError(unknownErr)
	wrongDE := apperrors.ToDomainError(wrongErr)
	assert.Equal(t, "UNAUTHORIZED", unknownDE.Code)
	assert.Equal(t, unknownDE.Code, wrongDE.Code)
	assert.Equal(t, unknownDE.Message, wrongDE.Message)
	assert.Equal(t, unknownDE.HTTPStatus, wrongDE.HTTPStatus)
}

func TestUpdateProfileRotatesPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Jane", "jane@example.com", "old-pass")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, user.ID, "", "", "new-pass")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "jane@example.com", "old-pass")
	assert.Error(t, err)
	_, _, _, err = svc.Login(ctx, "jane@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Jane", "jane@example.com", "pass1234")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, "Jane Q", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Q", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)

	// Old password still works since no new one was provided.
	_, _, _, err = svc.Login(ctx, "jane@example.com", "pass1234")
	assert.NoError(t, err)
}

func TestProfileUnknownID(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Profile(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
