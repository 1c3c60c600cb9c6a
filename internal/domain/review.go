package domain

import "time"

// Review is a visitor testimonial. Submissions land unapproved and are
// hidden from the public site until an administrator approves them.
type Review struct {
	ID           string    `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Avatar       string    `json:"avatar"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	Approved     bool      `json:"approved"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const DefaultAvatar = "default-avatar.jpg"
