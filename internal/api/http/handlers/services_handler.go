package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/service"
	"github.com/spec-kit/studio-cms/internal/storage"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// ServicesHandler exposes public listing and admin CRUD for site services.
type ServicesHandler struct {
	catalog *service.CatalogService
	uploads *storage.LocalStore
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalog *service.CatalogService, uploads *storage.LocalStore) *ServicesHandler {
	return &ServicesHandler{catalog: catalog, uploads: uploads}
}

// List handles GET /api/services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	services, err := h.catalog.ListServices(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": services})
}

// ListFeatured handles GET /api/services/featured.
func (h *ServicesHandler) ListFeatured(c *fiber.Ctx) error {
	services, err := h.catalog.ListFeaturedServices(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": services})
}

// Get handles GET /api/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.catalog.GetService(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": svc})
}

// Create handles POST /api/services (multipart with optional icon/image files).
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var form dto.ServiceForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc := &domain.Service{
		Title:       form.Title,
		Description: form.Description,
	}
	if form.Featured != nil {
		svc.Featured = *form.Featured
	}
	if form.Order != nil {
		svc.Order = *form.Order
	}

	var err error
	if svc.Icon, err = h.saveOptional(c, "icon"); err != nil {
		return err
	}
	if svc.ImageURL, err = h.saveOptional(c, "image"); err != nil {
		return err
	}

	created, err := h.catalog.CreateService(c.Context(), svc)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /api/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	var form dto.ServiceForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	update := service.ServiceUpdate{
		Featured: form.Featured,
		Order:    form.Order,
	}
	if form.Title != "" {
		update.Title = &form.Title
	}
	if form.Description != "" {
		update.Description = &form.Description
	}

	var err error
	if update.NewIcon, err = h.saveOptional(c, "icon"); err != nil {
		return err
	}
	if update.NewImage, err = h.saveOptional(c, "image"); err != nil {
		return err
	}

	svc, err := h.catalog.UpdateService(c.Context(), c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": svc})
}

// Delete handles DELETE /api/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteService(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "service removed"}})
}

// saveOptional stores the named form file when present. Absent files are not
// an error; an unreadable or rejected file is.
func (h *ServicesHandler) saveOptional(c *fiber.Ctx, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return h.uploads.Save(field, header)
}
