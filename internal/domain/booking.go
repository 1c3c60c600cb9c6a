package domain

import "time"

// BookingStatus tracks the lifecycle of a training booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a visitor's request to attend a training. The training title
// is snapshotted so the booking stays meaningful if the training changes.
type Booking struct {
	ID            string        `json:"id"`
	TrainingID    string        `json:"training_id"`
	TrainingTitle string        `json:"training_title"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Message       string        `json:"message"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
