package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/studio-cms/internal/auth"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
)

var testAdminCfg = config.AdminConfig{
	Name:     "Admin User",
	Email:    "admin@example.com",
	Password: "admin123",
}

func TestEnsureAdminCreatesOnEmptyStore(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop()))

	admin, err := users.GetByEmail(ctx, testAdminCfg.Email)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, testAdminCfg.Name, admin.Name)
	assert.NoError(t, auth.ComparePassword(admin.PasswordHash, testAdminCfg.Password))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop()))
	first, err := users.GetByEmail(ctx, testAdminCfg.Email)
	require.NoError(t, err)

	require.NoError(t, EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop()))
	second, err := users.GetByEmail(ctx, testAdminCfg.Email)
	require.NoError(t, err)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

// An operator-created admin under any email makes the bootstrap a no-op; the
// default account is never created alongside it.
func TestEnsureAdminSkipsWhenAdminExistsElsewhere(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	existing := &domain.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, users.Create(ctx, existing))

	require.NoError(t, EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop()))

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// The existing-admin check runs before the default-email check, so a plain
// account squatting on the default email is harmless once any admin exists.
func TestEnsureAdminIgnoresOccupiedDefaultEmailWhenAdminExists(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	squatter := &domain.User{Name: "Squatter", Email: testAdminCfg.Email, PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, squatter))
	admin := &domain.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, users.Create(ctx, admin))

	require.NoError(t, EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop()))

	stored, err := users.GetByEmail(ctx, testAdminCfg.Email)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
}

func TestEnsureAdminFailsWhenDefaultEmailTakenByNonAdmin(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	squatter := &domain.User{Name: "Squatter", Email: testAdminCfg.Email, PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, squatter))

	err := EnsureAdmin(ctx, users, testAdminCfg, bcrypt.MinCost, zap.NewNop())
	require.ErrorIs(t, err, ErrDefaultEmailTaken)

	// The squatting account must not have been escalated.
	stored, err := users.GetByEmail(ctx, testAdminCfg.Email)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
}

func TestRepairRequiresEmailAndPassword(t *testing.T) {
	users := repository.NewMemoryUserRepository()

	_, err := Repair(context.Background(), users, "", "newpass", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrRepairUsage)

	_, err = Repair(context.Background(), users, "someone@example.com", "", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrRepairUsage)
}

func TestRepairNeverCreatesAccounts(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	_, err := Repair(ctx, users, "ghost@example.com", "newpass", bcrypt.MinCost)
	require.ErrorIs(t, err, ErrAccountNotFound)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRepairPromotesAndRotatesPassword(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	oldHash, err := auth.HashPassword("old-pass", bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.User{Name: "Locked Out", Email: "locked@example.com", PasswordHash: oldHash}
	require.NoError(t, users.Create(ctx, account))

	repaired, err := Repair(ctx, users, "locked@example.com", "new-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, repaired.IsAdmin)
	assert.Empty(t, repaired.PasswordHash)

	stored, err := users.GetByEmail(ctx, "locked@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
	assert.Error(t, auth.ComparePassword(stored.PasswordHash, "old-pass"))
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "new-pass"))
}

func TestRepairIsIdempotent(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	account := &domain.User{Name: "Locked Out", Email: "locked@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, account))

	_, err := Repair(ctx, users, "locked@example.com", "new-pass", bcrypt.MinCost)
	require.NoError(t, err)
	_, err = Repair(ctx, users, "locked@example.com", "new-pass", bcrypt.MinCost)
	require.NoError(t, err)

	stored, err := users.GetByEmail(ctx, "locked@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "new-pass"))

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListAdminsStripsHashes(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", PasswordHash: "x", IsAdmin: true}))
	require.NoError(t, users.Create(ctx, &domain.User{Name: "B", Email: "b@example.com", PasswordHash: "x"}))

	admins, err := ListAdmins(ctx, users)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "a@example.com", admins[0].Email)
	assert.Empty(t, admins[0].PasswordHash)
}
