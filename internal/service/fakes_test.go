package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/events"
)

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

type fakeReviewRepo struct {
	reviews map[string]*domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) error {
	review.ID = uuid.NewString()
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id string) (*domain.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *review
	return &clone, nil
}

func (r *fakeReviewRepo) List(_ context.Context) ([]*domain.Review, error) {
	out := make([]*domain.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		clone := *review
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeReviewRepo) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	all, _ := r.List(ctx)
	out := all[:0]
	for _, review := range all {
		if review.Approved {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Review, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) Count(_ context.Context) (int, error) {
	return len(r.reviews), nil
}

func (r *fakeReviewRepo) CountPending(_ context.Context) (int, error) {
	count := 0
	for _, review := range r.reviews {
		if !review.Approved {
			count++
		}
	}
	return count, nil
}

type fakeContactRepo struct {
	contacts map[string]*domain.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (r *fakeContactRepo) Create(_ context.Context, contact *domain.Contact) error {
	contact.ID = uuid.NewString()
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *fakeContactRepo) UpdateStatus(_ context.Context, id string, status domain.ContactStatus) error {
	contact, ok := r.contacts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	contact.Status = status
	return nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *contact
	return &clone, nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		clone := *contact
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeContactRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Contact, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.contacts, id)
	return nil
}

func (r *fakeContactRepo) Count(_ context.Context) (int, error) {
	return len(r.contacts), nil
}

func (r *fakeContactRepo) CountByStatus(_ context.Context, status domain.ContactStatus) (int, error) {
	count := 0
	for _, contact := range r.contacts {
		if contact.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = uuid.NewString()
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *booking
	return &clone, nil
}

func (r *fakeBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		clone := *booking
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) Count(_ context.Context) (int, error) {
	return len(r.bookings), nil
}

func (r *fakeBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int, error) {
	count := 0
	for _, booking := range r.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeTrainingRepo struct {
	trainings map[string]*domain.Training
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{trainings: make(map[string]*domain.Training)}
}

func (r *fakeTrainingRepo) Create(_ context.Context, tr *domain.Training) error {
	tr.ID = uuid.NewString()
	clone := *tr
	r.trainings[tr.ID] = &clone
	return nil
}

func (r *fakeTrainingRepo) Update(_ context.Context, tr *domain.Training) error {
	if _, ok := r.trainings[tr.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *tr
	r.trainings[tr.ID] = &clone
	return nil
}

func (r *fakeTrainingRepo) GetByID(_ context.Context, id string) (*domain.Training, error) {
	tr, ok := r.trainings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *tr
	return &clone, nil
}

func (r *fakeTrainingRepo) List(_ context.Context) ([]*domain.Training, error) {
	out := make([]*domain.Training, 0, len(r.trainings))
	for _, tr := range r.trainings {
		clone := *tr
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeTrainingRepo) ListFeatured(ctx context.Context) ([]*domain.Training, error) {
	all, _ := r.List(ctx)
	out := all[:0]
	for _, tr := range all {
		if tr.Featured {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.trainings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.trainings, id)
	return nil
}

func (r *fakeTrainingRepo) Count(_ context.Context) (int, error) {
	return len(r.trainings), nil
}
