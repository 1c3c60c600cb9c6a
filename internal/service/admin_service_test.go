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

func newAdminFixture() (*AdminService, repository.UserRepository) {
	users := repository.NewMemoryUserRepository()
	cfg := config.AuthConfig{JWTSecret: "admin-test-secret", TokenTTLHours: 1, BcryptCost: bcrypt.MinCost}
	return NewAdminService(cfg, AdminDependencies{Users: users}), users
}

func TestAdminCreateUserMayGrantAdmin(t *testing.T) {
	svc, users := newAdminFixture()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "Second Admin", "second@example.com", "pass1234", true)
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)
	assert.Empty(t, created.PasswordHash)

	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
}

func TestAdminCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "One", "dup@example.com", "pass1234", false)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "Two", "DUP@example.com", "pass1234", false)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestAdminUpdateUserPartialFields(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "Visitor", "visitor@example.com", "pass1234", false)
	require.NoError(t, err)

	name := "Renamed"
	updated, err := svc.UpdateUser(ctx, created.ID, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "visitor@example.com", updated.Email)
	assert.False(t, updated.IsAdmin)
}

func TestAdminUpdateUserPromoteAndDemote(t *testing.T) {
	svc, users := newAdminFixture()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "Visitor", "visitor@example.com", "pass1234", false)
	require.NoError(t, err)

	promote := true
	_, err = svc.UpdateUser(ctx, created.ID, UserUpdate{IsAdmin: &promote})
	require.NoError(t, err)
	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)

	demote := false
	_, err = svc.UpdateUser(ctx, created.ID, UserUpdate{IsAdmin: &demote})
	require.NoError(t, err)
	stored, err = users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
}

func TestAdminDeleteUserForbidsSelfDelete(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, "Admin", "admin@example.com", "pass1234", true)
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, admin.ID, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestAdminDeleteUserForbidsAdminTargets(t *testing.T) {
	svc, users := newAdminFixture()
	ctx := context.Background()

	actor, err := svc.CreateUser(ctx, "Admin A", "a@example.com", "pass1234", true)
	require.NoError(t, err)
	target, err := svc.CreateUser(ctx, "Admin B", "b@example.com", "pass1234", true)
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, actor.ID, target.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	// Target survives the attempt.
	_, err = users.GetByID(ctx, target.ID)
	assert.NoError(t, err)
}

func TestAdminDeleteUserRemovesPlainAccounts(t *testing.T) {
	svc, users := newAdminFixture()
	ctx := context.Background()

	actor, err := svc.CreateUser(ctx, "Admin", "admin@example.com", "pass1234", true)
	require.NoError(t, err)
	target, err := svc.CreateUser(ctx, "Visitor", "visitor@example.com", "pass1234", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, actor.ID, target.ID))

	_, err = users.GetByID(ctx, target.ID)
	assert.Error(t, err)
}

func TestAdminDeleteUserUnknownTarget(t *testing.T) {
	svc, _ := newAdminFixture()
	ctx := context.Background()

	actor, err := svc.CreateUser(ctx, "Admin", "admin@example.com", "pass1234", true)
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, actor.ID, "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
