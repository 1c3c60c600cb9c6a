package domain

import "time"

// TrainingLevel enumerates supported difficulty levels.
type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "Beginner"
	LevelIntermediate TrainingLevel = "Intermediate"
	LevelAdvanced     TrainingLevel = "Advanced"
	LevelAll          TrainingLevel = "All Levels"
)

// TrainingFormat enumerates delivery formats.
type TrainingFormat string

const (
	FormatPhysical TrainingFormat = "Physical"
	FormatOnline   TrainingFormat = "Online"
	FormatMixed    TrainingFormat = "Physical/Online Class"
	FormatHybrid   TrainingFormat = "Hybrid"
)

// Instructor describes who delivers a training.
type Instructor struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Training is a bookable course offered on the site.
type Training struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"image_url"`
	Duration       string         `json:"duration"`
	Level          TrainingLevel  `json:"level"`
	Format         TrainingFormat `json:"format"`
	CareerProspect string         `json:"career_prospect"`
	LearningTopics []string       `json:"learning_topics"`
	Instructor     Instructor     `json:"instructor"`
	Price          float64        `json:"price"`
	Discount       float64        `json:"discount"`
	Featured       bool           `json:"featured"`
	Order          int            `json:"order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

const DefaultTrainingImage = "default-training.jpg"
