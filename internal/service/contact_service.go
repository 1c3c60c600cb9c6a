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

// ContactService handles public inquiries and the admin inbox.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Submit stores a new inquiry and notifies subscribers.
func (s *ContactService) Submit(ctx context.Context, name, email, phone, subject, message string) (*domain.Contact, error) {
	if name == "" || email == "" || phone == "" || subject == "" || message == "" {
		return nil, apperrors.NewValidationError("name, email, phone, subject and message required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("invalid email address", nil)
	}

	contact := &domain.Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContactSubmitted,
		EntityID:  contact.ID,
		Timestamp: time.Now(),
		Payload:   events.ContactSubmittedPayload{Name: name, Email: email, Subject: subject},
	})
	return contact, nil
}

// List returns all inquiries, newest first.
func (s *ContactService) List(ctx context.Context) ([]*domain.Contact, error) {
	return s.contacts.List(ctx)
}

// Get fetches one inquiry.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact", nil)
		}
		return nil, err
	}
	return contact, nil
}

// SetStatus moves an inquiry through its workflow.
func (s *ContactService) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusRead, domain.ContactStatusResponded:
	default:
		return apperrors.NewValidationError("invalid status", map[string]any{"status": string(status)})
	}
	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact", nil)
		}
		return err
	}
	return nil
}

// Delete removes an inquiry.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact", nil)
		}
		return err
	}
	return nil
}
