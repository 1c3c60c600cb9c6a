package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/events"
	"github.com/spec-kit/studio-cms/internal/repository"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// BookingService handles public training bookings and their admin workflow.
type BookingService struct {
	bookings   repository.BookingRepository
	trainings  repository.TrainingRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, trainings repository.TrainingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, trainings: trainings, dispatcher: dispatcher}
}

// Submit records a booking request for an existing training. The training
// title is snapshotted onto the booking.
func (s *BookingService) Submit(ctx context.Context, trainingID, name, email, phone, message string) (*domain.Booking, error) {
	if trainingID == "" || name == "" || email == "" || phone == "" {
		return nil, apperrors.NewValidationError("training, name, email and phone required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("invalid email address", nil)
	}

	training, err := s.trainings.GetByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("training", nil)
		}
		return nil, err
	}

	booking := &domain.Booking{
		TrainingID:    training.ID,
		TrainingTitle: training.Title,
		Name:          name,
		Email:         email,
		Phone:         phone,
		Message:       message,
		Status:        domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		EntityID:  booking.ID,
		Timestamp: time.Now(),
		Payload:   events.BookingCreatedPayload{TrainingTitle: training.Title, Name: name, Email: email},
	})
	return booking, nil
}

// List returns all bookings, newest first.
func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx)
}

// Get fetches one booking.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}
	return booking, nil
}

// SetStatus confirms or cancels a booking.
func (s *BookingService) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return apperrors.NewValidationError("invalid status", map[string]any{"status": string(status)})
	}
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", nil)
		}
		return err
	}
	return nil
}

// Delete removes a booking.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", nil)
		}
		return err
	}
	return nil
}
