package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/service"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// ContactsHandler exposes the public contact form and the admin inbox.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.contacts.Submit(c.Context(), req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contact})
}

// List handles GET /api/contact.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contacts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contacts})
}

// Get handles GET /api/contact/:id.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	contact, err := h.contacts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contact})
}

// UpdateStatus handles PUT /api/contact/:id/status.
func (h *ContactsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.contacts.SetStatus(c.Context(), c.Params("id"), domain.ContactStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "status updated"}})
}

// Delete handles DELETE /api/contact/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "contact removed"}})
}
