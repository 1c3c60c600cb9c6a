package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactSubmitted EventType = "contact_submitted"
	EventBookingCreated   EventType = "booking_created"
	EventReviewSubmitted  EventType = "review_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactSubmittedPayload carries the inquiry summary for notifications.
type ContactSubmittedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

// BookingCreatedPayload carries the booking summary for notifications.
type BookingCreatedPayload struct {
	TrainingTitle string `json:"training_title"`
	Name          string `json:"name"`
	Email         string `json:"email"`
}

// ReviewSubmittedPayload carries the review summary for notifications.
type ReviewSubmittedPayload struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
}
