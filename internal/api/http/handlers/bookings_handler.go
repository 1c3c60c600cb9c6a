package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/service"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// BookingsHandler exposes public booking submission and the admin workflow.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Submit handles POST /api/bookings.
func (h *BookingsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.Submit(c.Context(), req.TrainingID, req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": booking})
}

// List handles GET /api/bookings.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookings})
}

// Get handles GET /api/bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	booking, err := h.bookings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": booking})
}

// UpdateStatus handles PUT /api/bookings/:id/status.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.bookings.SetStatus(c.Context(), c.Params("id"), domain.BookingStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "status updated"}})
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.bookings.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "booking removed"}})
}
