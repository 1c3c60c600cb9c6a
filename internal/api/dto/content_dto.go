package dto

import "github.com/spec-kit/studio-cms/internal/domain"

// ServiceForm is parsed from multipart form values on create/update.
// Image files travel as separate form files named "icon" and "image".
type ServiceForm struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Featured    *bool  `json:"featured" form:"featured"`
	Order       *int   `json:"order" form:"order"`
}

// TrainingForm mirrors the training fields; the instructor is nested.
type TrainingForm struct {
	Title          string            `json:"title" form:"title"`
	Description    string            `json:"description" form:"description"`
	Duration       string            `json:"duration" form:"duration"`
	Level          string            `json:"level" form:"level"`
	Format         string            `json:"format" form:"format"`
	CareerProspect string            `json:"career_prospect" form:"career_prospect"`
	LearningTopics []string          `json:"learning_topics" form:"learning_topics"`
	Instructor     domain.Instructor `json:"instructor"`
	Price          float64           `json:"price" form:"price"`
	Discount       float64           `json:"discount" form:"discount"`
	Featured       bool              `json:"featured" form:"featured"`
	Order          int               `json:"order" form:"order"`
}

// ToDomain builds a training from the form.
func (f TrainingForm) ToDomain() *domain.Training {
	return &domain.Training{
		Title:          f.Title,
		Description:    f.Description,
		Duration:       f.Duration,
		Level:          domain.TrainingLevel(f.Level),
		Format:         domain.TrainingFormat(f.Format),
		CareerProspect: f.CareerProspect,
		LearningTopics: f.LearningTopics,
		Instructor:     f.Instructor,
		Price:          f.Price,
		Discount:       f.Discount,
		Featured:       f.Featured,
		Order:          f.Order,
	}
}

// MenuItemForm mirrors the menu item fields.
type MenuItemForm struct {
	Name         string  `json:"name" form:"name"`
	Price        float64 `json:"price" form:"price"`
	Description  string  `json:"description" form:"description"`
	Category     string  `json:"category" form:"category"`
	Available    *bool   `json:"available" form:"available"`
	DisplayOrder *int    `json:"display_order" form:"display_order"`
}

// ToDomain builds a menu item from the form.
func (f MenuItemForm) ToDomain() *domain.MenuItem {
	item := &domain.MenuItem{
		Name:         f.Name,
		Price:        f.Price,
		Description:  f.Description,
		Category:     domain.MenuCategory(f.Category),
		Available:    true,
		DisplayOrder: 9999,
	}
	if f.Available != nil {
		item.Available = *f.Available
	}
	if f.DisplayOrder != nil {
		item.DisplayOrder = *f.DisplayOrder
	}
	return item
}

// SubmitReviewRequest payload for public review submission.
type SubmitReviewRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ModerateReviewRequest payload for review moderation.
type ModerateReviewRequest struct {
	Approved *bool `json:"approved"`
	Featured *bool `json:"featured"`
}

// SubmitContactRequest payload for the public contact form.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitBookingRequest payload for booking a training.
type SubmitBookingRequest struct {
	TrainingID string `json:"training_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// UpdateStatusRequest moves contacts/bookings through their workflow.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
