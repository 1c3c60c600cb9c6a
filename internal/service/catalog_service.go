package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/cache"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
	"github.com/spec-kit/studio-cms/internal/storage"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// Cache keys for public catalog listings.
const (
	cacheKeyServices         = "catalog:services"
	cacheKeyFeaturedServices = "catalog:services:featured"
	cacheKeyTrainings        = "catalog:trainings"
	cacheKeyFeaturedTrain    = "catalog:trainings:featured"
	cacheKeyMenu             = "catalog:menu:available"
)

// CatalogService manages the publishable content collections: services,
// trainings and menu items. Public listings go through the Redis cache;
// every admin mutation invalidates the affected keys and cleans up replaced
// image files.
type CatalogService struct {
	services  repository.ServiceRepository
	trainings repository.TrainingRepository
	menuItems repository.MenuItemRepository
	cache     *cache.ContentCache
	uploads   *storage.LocalStore
}

// NewCatalogService builds the service.
func NewCatalogService(
	services repository.ServiceRepository,
	trainings repository.TrainingRepository,
	menuItems repository.MenuItemRepository,
	contentCache *cache.ContentCache,
	uploads *storage.LocalStore,
) *CatalogService {
	return &CatalogService{
		services:  services,
		trainings: trainings,
		menuItems: menuItems,
		cache:     contentCache,
		uploads:   uploads,
	}
}

// --- Services ---

// ListServices returns all services ordered for display.
func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	var cached []*domain.Service
	if s.cache.Get(ctx, cacheKeyServices, &cached) {
		return cached, nil
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyServices, services)
	return services, nil
}

// ListFeaturedServices returns featured services only.
func (s *CatalogService) ListFeaturedServices(ctx context.Context) ([]*domain.Service, error) {
	var cached []*domain.Service
	if s.cache.Get(ctx, cacheKeyFeaturedServices, &cached) {
		return cached, nil
	}
	services, err := s.services.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyFeaturedServices, services)
	return services, nil
}

// GetService fetches one service.
func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("service", nil)
		}
		return nil, err
	}
	return svc, nil
}

// CreateService persists a new service.
func (s *CatalogService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc.Title == "" || svc.Description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}
	if svc.Icon == "" {
		svc.Icon = domain.DefaultServiceIcon
	}
	if svc.ImageURL == "" {
		svc.ImageURL = domain.DefaultServiceImage
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyServices, cacheKeyFeaturedServices)
	return svc, nil
}

// ServiceUpdate carries optional service changes. NewIcon/NewImage replace
// the stored files; the old ones are removed from disk.
type ServiceUpdate struct {
	Title       *string
	Description *string
	Featured    *bool
	Order       *int
	NewIcon     string
	NewImage    string
}

// UpdateService applies changes to an existing service.
func (s *CatalogService) UpdateService(ctx context.Context, id string, update ServiceUpdate) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		svc.Title = *update.Title
	}
	if update.Description != nil {
		svc.Description = *update.Description
	}
	if update.Featured != nil {
		svc.Featured = *update.Featured
	}
	if update.Order != nil {
		svc.Order = *update.Order
	}
	if update.NewIcon != "" {
		_ = s.uploads.Delete(svc.Icon, domain.DefaultServiceIcon)
		svc.Icon = update.NewIcon
	}
	if update.NewImage != "" {
		_ = s.uploads.Delete(svc.ImageURL, domain.DefaultServiceImage)
		svc.ImageURL = update.NewImage
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyServices, cacheKeyFeaturedServices)
	return svc, nil
}

// DeleteService removes a service and its uploaded images.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return err
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.uploads.Delete(svc.Icon, domain.DefaultServiceIcon)
	_ = s.uploads.Delete(svc.ImageURL, domain.DefaultServiceImage)
	s.cache.Invalidate(ctx, cacheKeyServices, cacheKeyFeaturedServices)
	return nil
}

// --- Trainings ---

// ListTrainings returns all trainings ordered for display.
func (s *CatalogService) ListTrainings(ctx context.Context) ([]*domain.Training, error) {
	var cached []*domain.Training
	if s.cache.Get(ctx, cacheKeyTrainings, &cached) {
		return cached, nil
	}
	trainings, err := s.trainings.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyTrainings, trainings)
	return trainings, nil
}

// ListFeaturedTrainings returns featured trainings only.
func (s *CatalogService) ListFeaturedTrainings(ctx context.Context) ([]*domain.Training, error) {
	var cached []*domain.Training
	if s.cache.Get(ctx, cacheKeyFeaturedTrain, &cached) {
		return cached, nil
	}
	trainings, err := s.trainings.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyFeaturedTrain, trainings)
	return trainings, nil
}

// GetTraining fetches one training.
func (s *CatalogService) GetTraining(ctx context.Context, id string) (*domain.Training, error) {
	tr, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("training", nil)
		}
		return nil, err
	}
	return tr, nil
}

// CreateTraining persists a new training.
func (s *CatalogService) CreateTraining(ctx context.Context, tr *domain.Training) (*domain.Training, error) {
	if tr.Title == "" || tr.Description == "" || tr.Duration == "" {
		return nil, apperrors.NewValidationError("title, description and duration required", nil)
	}
	if tr.Level == "" {
		tr.Level = domain.LevelAll
	}
	if tr.Format == "" {
		tr.Format = domain.FormatMixed
	}
	if tr.ImageURL == "" {
		tr.ImageURL = domain.DefaultTrainingImage
	}
	if err := s.trainings.Create(ctx, tr); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyTrainings, cacheKeyFeaturedTrain)
	return tr, nil
}

// UpdateTraining replaces the stored training with the given value, keeping
// id and image unless a new image was uploaded.
func (s *CatalogService) UpdateTraining(ctx context.Context, id string, updated *domain.Training, newImage string) (*domain.Training, error) {
	current, err := s.GetTraining(ctx, id)
	if err != nil {
		return nil, err
	}

	updated.ID = current.ID
	updated.ImageURL = current.ImageURL
	if newImage != "" {
		_ = s.uploads.Delete(current.ImageURL, domain.DefaultTrainingImage)
		updated.ImageURL = newImage
	}

	if err := s.trainings.Update(ctx, updated); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyTrainings, cacheKeyFeaturedTrain)
	return updated, nil
}

// DeleteTraining removes a training and its uploaded image.
func (s *CatalogService) DeleteTraining(ctx context.Context, id string) error {
	tr, err := s.GetTraining(ctx, id)
	if err != nil {
		return err
	}
	if err := s.trainings.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.uploads.Delete(tr.ImageURL, domain.DefaultTrainingImage)
	s.cache.Invalidate(ctx, cacheKeyTrainings, cacheKeyFeaturedTrain)
	return nil
}

// --- Menu items ---

// ListMenu returns available items for the public menu.
func (s *CatalogService) ListMenu(ctx context.Context) ([]*domain.MenuItem, error) {
	var cached []*domain.MenuItem
	if s.cache.Get(ctx, cacheKeyMenu, &cached) {
		return cached, nil
	}
	items, err := s.menuItems.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyMenu, items)
	return items, nil
}

// ListAllMenuItems returns every item, including unavailable ones, for the
// admin panel.
func (s *CatalogService) ListAllMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.menuItems.List(ctx)
}

// GetMenuItem fetches one item.
func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.menuItems.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("menu item", nil)
		}
		return nil, err
	}
	return item, nil
}

// CreateMenuItem persists a new item.
func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Price < 0 {
		return nil, apperrors.NewValidationError("name required and price must be non-negative", nil)
	}
	if item.Category == "" {
		item.Category = domain.CategoryCoffee
	}
	if item.ImageURL == "" {
		item.ImageURL = domain.DefaultMenuItemImage
	}
	if err := s.menuItems.Create(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyMenu)
	return item, nil
}

// UpdateMenuItem replaces the stored item, keeping id and image unless a new
// image was uploaded.
func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, updated *domain.MenuItem, newImage string) (*domain.MenuItem, error) {
	current, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	updated.ID = current.ID
	updated.ImageURL = current.ImageURL
	if newImage != "" {
		_ = s.uploads.Delete(current.ImageURL, domain.DefaultMenuItemImage)
		updated.ImageURL = newImage
	}

	if err := s.menuItems.Update(ctx, updated); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyMenu)
	return updated, nil
}

// DeleteMenuItem removes an item and its uploaded image.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.menuItems.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.uploads.Delete(item.ImageURL, domain.DefaultMenuItemImage)
	s.cache.Invalidate(ctx, cacheKeyMenu)
	return nil
}
