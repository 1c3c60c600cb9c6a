package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/dto"
	"github.com/spec-kit/studio-cms/internal/service"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// ReviewsHandler exposes public submission and admin moderation of reviews.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// ListApproved handles GET /api/reviews.
func (h *ReviewsHandler) ListApproved(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListApproved(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// ListAll handles GET /api/reviews/all (moderation queue).
func (h *ReviewsHandler) ListAll(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// Submit handles POST /api/reviews.
func (h *ReviewsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Submit(c.Context(), req.Name, req.Avatar, req.Text, req.Rating)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": review})
}

// Moderate handles PUT /api/reviews/:id.
func (h *ReviewsHandler) Moderate(c *fiber.Ctx) error {
	var req dto.ModerateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Moderate(c.Context(), c.Params("id"), req.Approved, req.Featured)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": review})
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.reviews.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "review removed"}})
}
