package domain

import "time"

// Service is a published offering shown on the public site.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Default asset names used when no upload was provided. Files with these
// names are never deleted from disk.
const (
	DefaultServiceIcon  = "default-icon.png"
	DefaultServiceImage = "default-service.jpg"
)
