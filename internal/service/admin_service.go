package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/auth"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// AdminService covers the admin dashboard and user management.
type AdminService struct {
	users      repository.UserRepository
	services   repository.ServiceRepository
	trainings  repository.TrainingRepository
	reviews    repository.ReviewRepository
	contacts   repository.ContactRepository
	bookings   repository.BookingRepository
	menuItems  repository.MenuItemRepository
	bcryptCost int
}

// AdminDependencies bundles the repositories the admin surface reads.
type AdminDependencies struct {
	Users     repository.UserRepository
	Services  repository.ServiceRepository
	Trainings repository.TrainingRepository
	Reviews   repository.ReviewRepository
	Contacts  repository.ContactRepository
	Bookings  repository.BookingRepository
	MenuItems repository.MenuItemRepository
}

// NewAdminService builds the service.
func NewAdminService(cfg config.AuthConfig, deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.Users,
		services:   deps.Services,
		trainings:  deps.Trainings,
		reviews:    deps.Reviews,
		contacts:   deps.Contacts,
		bookings:   deps.Bookings,
		menuItems:  deps.MenuItems,
		bcryptCost: cfg.BcryptCost,
	}
}

// DashboardCounts aggregates per-collection totals.
type DashboardCounts struct {
	Services        int `json:"services"`
	Trainings       int `json:"trainings"`
	Reviews         int `json:"reviews"`
	PendingReviews  int `json:"pending_reviews"`
	Contacts        int `json:"contacts"`
	NewContacts     int `json:"new_contacts"`
	Bookings        int `json:"bookings"`
	PendingBookings int `json:"pending_bookings"`
	MenuItems       int `json:"menu_items"`
	Users           int `json:"users"`
}

// Dashboard is what the admin landing page renders.
type Dashboard struct {
	Counts         DashboardCounts   `json:"counts"`
	RecentContacts []*domain.Contact `json:"recent_contacts"`
	RecentReviews  []*domain.Review  `json:"recent_reviews"`
}

const recentLimit = 5

// GetDashboard collects counts and recent activity.
func (s *AdminService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		dash Dashboard
		err  error
	)
	if dash.Counts.Services, err = s.services.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.Trainings, err = s.trainings.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.Reviews, err = s.reviews.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.PendingReviews, err = s.reviews.CountPending(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.Contacts, err = s.contacts.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.NewContacts, err = s.contacts.CountByStatus(ctx, domain.ContactStatusNew); err != nil {
		return nil, err
	}
	if dash.Counts.Bookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.PendingBookings, err = s.bookings.CountByStatus(ctx, domain.BookingStatusPending); err != nil {
		return nil, err
	}
	if dash.Counts.MenuItems, err = s.menuItems.Count(ctx); err != nil {
		return nil, err
	}
	if dash.Counts.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if dash.RecentContacts, err = s.contacts.ListRecent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if dash.RecentReviews, err = s.reviews.ListRecent(ctx, recentLimit); err != nil {
		return nil, err
	}
	return &dash, nil
}

// ListUsers returns all accounts, hashes stripped.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]*domain.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

// GetUser returns a single account.
func (s *AdminService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user.Sanitized(), nil
}

// CreateUser creates an account on behalf of an administrator; unlike
// self-registration it may set the admin flag.
func (s *AdminService) CreateUser(ctx context.Context, name, email, password string, isAdmin bool) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UserUpdate carries optional admin-side account changes.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsAdmin  *bool
}

// UpdateUser applies the given changes, including promotion and demotion.
// Demotion takes effect on the target's next request (the gate re-reads the
// flag), not retroactively on outstanding tokens.
func (s *AdminService) UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = strings.ToLower(*update.Email)
	}
	if update.IsAdmin != nil {
		user.IsAdmin = *update.IsAdmin
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := auth.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// DeleteUser removes an account, subject to policy: administrator accounts
// cannot be deleted through this path, and no account may delete itself.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperrors.NewForbidden("cannot delete your own account")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if target.IsAdmin {
		return apperrors.NewForbidden("administrator accounts cannot be deleted")
	}

	return s.users.Delete(ctx, targetID)
}
