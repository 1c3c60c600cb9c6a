package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
)

// SampleContent inserts starter services and trainings when those tables are
// empty, so a fresh deployment has something to show. Failures are logged by
// the caller and are not fatal: unlike the admin bootstrap, the site is
// usable without sample rows.
func SampleContent(ctx context.Context, services repository.ServiceRepository, trainings repository.TrainingRepository, logger *zap.Logger) error {
	count, err := services.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range sampleServices {
			if err := services.Create(ctx, &sampleServices[i]); err != nil {
				return err
			}
		}
		logger.Info("seeded sample services", zap.Int("count", len(sampleServices)))
	}

	count, err = trainings.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range sampleTrainings {
			if err := trainings.Create(ctx, &sampleTrainings[i]); err != nil {
				return err
			}
		}
		logger.Info("seeded sample trainings", zap.Int("count", len(sampleTrainings)))
	}

	return nil
}

var sampleServices = []domain.Service{
	{
		Title:       "Specialty Coffee Bar",
		Description: "Single-origin espresso and filter brews prepared by certified baristas.",
		Icon:        domain.DefaultServiceIcon,
		ImageURL:    domain.DefaultServiceImage,
		Featured:    true,
		Order:       1,
	},
	{
		Title:       "Private Event Catering",
		Description: "Full-service coffee catering for weddings, offices and pop-up events.",
		Icon:        domain.DefaultServiceIcon,
		ImageURL:    domain.DefaultServiceImage,
		Order:       2,
	},
	{
		Title:       "Wholesale Beans",
		Description: "Freshly roasted beans delivered weekly to cafes and restaurants.",
		Icon:        domain.DefaultServiceIcon,
		ImageURL:    domain.DefaultServiceImage,
		Order:       3,
	},
}

var sampleTrainings = []domain.Training{
	{
		Title:          "Barista Fundamentals",
		Description:    "Espresso extraction, milk texturing and workflow for aspiring baristas.",
		ImageURL:       domain.DefaultTrainingImage,
		Duration:       "2 days",
		Level:          domain.LevelBeginner,
		Format:         domain.FormatPhysical,
		CareerProspect: "Barista",
		LearningTopics: []string{"Espresso extraction", "Milk texturing", "Bar workflow"},
		Instructor: domain.Instructor{
			Name:     "Maria Keller",
			Title:    "Head Trainer",
			ImageURL: "default-instructor.jpg",
		},
		Price:    180,
		Featured: true,
		Order:    1,
	},
	{
		Title:          "Latte Art Masterclass",
		Description:    "Pouring technique from hearts and tulips through multi-layer swans.",
		ImageURL:       domain.DefaultTrainingImage,
		Duration:       "1 day",
		Level:          domain.LevelIntermediate,
		Format:         domain.FormatMixed,
		CareerProspect: "Senior Barista",
		LearningTopics: []string{"Free pour basics", "Layered patterns"},
		Instructor: domain.Instructor{
			Name:     "Jonas Brandt",
			Title:    "Latte Art Champion",
			ImageURL: "default-instructor.jpg",
		},
		Price: 120,
		Order: 2,
	},
}
