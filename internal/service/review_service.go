package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/events"
	"github.com/spec-kit/studio-cms/internal/repository"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// ReviewService handles public submission and admin moderation of
// testimonials.
type ReviewService struct {
	reviews    repository.ReviewRepository
	dispatcher events.Dispatcher
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository, dispatcher events.Dispatcher) *ReviewService {
	return &ReviewService{reviews: reviews, dispatcher: dispatcher}
}

// ListApproved returns reviews visible on the public site.
func (s *ReviewService) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.ListApproved(ctx)
}

// ListAll returns every review for the moderation queue.
func (s *ReviewService) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

// Submit accepts a visitor review. It always lands unapproved.
func (s *ReviewService) Submit(ctx context.Context, name, avatar, text string, rating int) (*domain.Review, error) {
	if name == "" || text == "" {
		return nil, apperrors.NewValidationError("name and text required", nil)
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	review := &domain.Review{
		ReviewerName: name,
		Avatar:       avatar,
		Rating:       rating,
		Text:         text,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReviewSubmitted,
		EntityID:  review.ID,
		Timestamp: time.Now(),
		Payload:   events.ReviewSubmittedPayload{ReviewerName: name, Rating: rating},
	})
	return review, nil
}

// Moderate updates the approved/featured flags.
func (s *ReviewService) Moderate(ctx context.Context, id string, approved, featured *bool) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("review", nil)
		}
		return nil, err
	}

	if approved != nil {
		review.Approved = *approved
	}
	if featured != nil {
		review.Featured = *featured
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("review", nil)
		}
		return err
	}
	return nil
}
