package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/events"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

func TestContactSubmit(t *testing.T) {
	repo := newFakeContactRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewContactService(repo, dispatcher)

	contact, err := svc.Submit(context.Background(), "Nina", "nina@example.com", "+4912345", "Catering", "Do you cater weddings?")
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, contact.Status)
	assert.NotEmpty(t, contact.ID)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventContactSubmitted, published[0].Type)
	payload := published[0].Payload.(events.ContactSubmittedPayload)
	assert.Equal(t, "Catering", payload.Subject)
}

func TestContactSubmitValidation(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &recordingDispatcher{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, "", "nina@example.com", "+49", "subj", "msg")
	assert.Error(t, err)

	_, err = svc.Submit(ctx, "Nina", "not-an-email", "+49", "subj", "msg")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestContactStatusWorkflow(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &recordingDispatcher{})
	ctx := context.Background()

	contact, err := svc.Submit(ctx, "Nina", "nina@example.com", "+49", "subj", "msg")
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, contact.ID, domain.ContactStatusRead))
	stored, err := svc.Get(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusRead, stored.Status)

	err = svc.SetStatus(ctx, contact.ID, domain.ContactStatus("archived"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	err = svc.SetStatus(ctx, "missing", domain.ContactStatusRead)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestContactDelete(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &recordingDispatcher{})
	ctx := context.Background()

	contact, err := svc.Submit(ctx, "Nina", "nina@example.com", "+49", "subj", "msg")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, contact.ID))
	_, err = svc.Get(ctx, contact.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
