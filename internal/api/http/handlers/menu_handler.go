package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/service"
	"github.com/spec-kit/studio-cms/internal/storage"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// MenuHandler exposes the public menu and admin CRUD for menu items.
type MenuHandler struct {
	catalog *service.CatalogService
	uploads *storage.LocalStore
}

// NewMenuHandler constructs handler.
func NewMenuHandler(catalog *service.CatalogService, uploads *storage.LocalStore) *MenuHandler {
	return &MenuHandler{catalog: catalog, uploads: uploads}
}

// List handles GET /api/menu (available items only).
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListMenu(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListAll handles GET /api/menu/all for the admin panel.
func (h *MenuHandler) ListAll(c *fiber.Ctx) error {
	items, err := h.catalog.ListAllMenuItems(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.catalog.GetMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Create handles POST /api/menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var form dto.MenuItemForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item := form.ToDomain()
	if image, err := h.saveOptional(c, "image"); err != nil {
		return err
	} else if image != "" {
		item.ImageURL = image
	}

	created, err := h.catalog.CreateMenuItem(c.Context(), item)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /api/menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var form dto.MenuItemForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	newImage, err := h.saveOptional(c, "image")
	if err != nil {
		return err
	}

	item, err := h.catalog.UpdateMenuItem(c.Context(), c.Params("id"), form.ToDomain(), newImage)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteMenuItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "menu item removed"}})
}

func (h *MenuHandler) saveOptional(c *fiber.Ctx, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return h.uploads.Save(field, header)
}
