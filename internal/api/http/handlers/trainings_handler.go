package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/service"
	"github.com/spec-kit/studio-cms/internal/storage"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// TrainingsHandler exposes public listing and admin CRUD for trainings.
type TrainingsHandler struct {
	catalog *service.CatalogService
	uploads *storage.LocalStore
}

// NewTrainingsHandler constructs handler.
func NewTrainingsHandler(catalog *service.CatalogService, uploads *storage.LocalStore) *TrainingsHandler {
	return &TrainingsHandler{catalog: catalog, uploads: uploads}
}

// List handles GET /api/trainings.
func (h *TrainingsHandler) List(c *fiber.Ctx) error {
	trainings, err := h.catalog.ListTrainings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": trainings})
}

// ListFeatured handles GET /api/trainings/featured.
func (h *TrainingsHandler) ListFeatured(c *fiber.Ctx) error {
	trainings, err := h.catalog.ListFeaturedTrainings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": trainings})
}

// Get handles GET /api/trainings/:id.
func (h *TrainingsHandler) Get(c *fiber.Ctx) error {
	tr, err := h.catalog.GetTraining(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tr})
}

// Create handles POST /api/trainings.
func (h *TrainingsHandler) Create(c *fiber.Ctx) error {
	var form dto.TrainingForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	tr := form.ToDomain()
	if image, err := h.saveOptional(c, "image"); err != nil {
		return err
	} else if image != "" {
		tr.ImageURL = image
	}

	created, err := h.catalog.CreateTraining(c.Context(), tr)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /api/trainings/:id.
func (h *TrainingsHandler) Update(c *fiber.Ctx) error {
	var form dto.TrainingForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	newImage, err := h.saveOptional(c, "image")
	if err != nil {
		return err
	}

	tr, err := h.catalog.UpdateTraining(c.Context(), c.Params("id"), form.ToDomain(), newImage)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tr})
}

// Delete handles DELETE /api/trainings/:id.
func (h *TrainingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteTraining(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "training removed"}})
}

func (h *TrainingsHandler) saveOptional(c *fiber.Ctx, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return h.uploads.Save(field, header)
}
