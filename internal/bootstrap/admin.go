package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-cms/internal/auth"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
)

// ErrDefaultEmailTaken is returned when the default admin email is held by a
// non-admin account. Creating a second account is impossible (unique email)
// and silently promoting a self-registered account would be a privilege
// escalation, so startup stops and the operator must run the repair tool.
var ErrDefaultEmailTaken = errors.New("default admin email is taken by a non-admin account; run the repairadmin tool to promote or fix it")

// ErrRepairUsage is returned by Repair when email or password is missing.
var ErrRepairUsage = errors.New("both email and password are required")

// ErrAccountNotFound is returned by Repair when no account exists at the
// given email. Repair never creates accounts.
var ErrAccountNotFound = errors.New("no account found for email")

// EnsureAdmin guarantees a reachable administrator account exists. It must
// complete before the server accepts traffic; any store error is returned and
// the caller treats it as fatal.
//
// Order matters: the admin-exists check runs first so an operator-created
// admin under any email makes this a no-op, regardless of what occupies the
// default email.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, cfg config.AdminConfig, bcryptCost int, logger *zap.Logger) error {
	exists, err := users.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("check for existing admin: %w", err)
	}
	if exists {
		logger.Info("admin account present, skipping bootstrap")
		return nil
	}

	existing, err := users.GetByEmail(ctx, cfg.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("look up default admin email: %w", err)
	}
	if existing != nil {
		// No admin exists anywhere and the default email is occupied by a
		// plain account. Refuse to serve rather than lock the operator out
		// or escalate an account nobody vouched for.
		return ErrDefaultEmailTaken
	}

	hash, err := auth.HashPassword(cfg.Password, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &domain.User{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	// Logged once, loudly: this is the only time the operator can capture
	// the generated credentials.
	logger.Warn("default admin account created; change the password after first login",
		zap.String("email", cfg.Email),
		zap.String("password", cfg.Password),
	)
	return nil
}

// Repair promotes an existing account to administrator and rotates its
// password. It targets a specific, already-registered account and never
// creates one. Running it twice with the same inputs yields the same state.
func Repair(ctx context.Context, users repository.UserRepository, email, password string, bcryptCost int) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrRepairUsage
	}

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, email)
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash new password: %w", err)
	}

	user.PasswordHash = hash
	user.IsAdmin = true
	if err := users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persist repaired account: %w", err)
	}
	return user.Sanitized(), nil
}

// ListAdmins reports the current administrator accounts, hashes stripped.
// The repair tool prints this before and after acting.
func ListAdmins(ctx context.Context, users repository.UserRepository) ([]*domain.User, error) {
	all, err := users.List(ctx)
	if err != nil {
		return nil, err
	}
	var admins []*domain.User
	for _, u := range all {
		if u.IsAdmin {
			admins = append(admins, u.Sanitized())
		}
	}
	return admins, nil
}
