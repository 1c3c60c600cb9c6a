package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-cms/internal/api/http/handlers"
	"github.com/spec-kit/studio-cms/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	Services       *handlers.ServicesHandler
	Trainings      *handlers.TrainingsHandler
	Reviews        *handlers.ReviewsHandler
	Contacts       *handlers.ContactsHandler
	Bookings       *handlers.BookingsHandler
	Menu           *handlers.MenuHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes. Public content reads and form
// submissions are open; everything mutating content requires an
// authenticated admin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	protect := cfg.AuthMiddleware.Handle
	adminOnly := []fiber.Handler{protect, auth.RequireAdmin()}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("/profile", protect, cfg.Users.Profile)
	users.Put("/profile", protect, cfg.Users.UpdateProfile)

	admin := api.Group("/admin", adminOnly...)
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/users", cfg.Admin.CreateUser)
	admin.Get("/users/:id", cfg.Admin.GetUser)
	admin.Put("/users/:id", cfg.Admin.UpdateUser)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)

	services := api.Group("/services")
	services.Get("/", cfg.Services.List)
	services.Get("/featured", cfg.Services.ListFeatured)
	services.Get("/:id", cfg.Services.Get)
	services.Post("/", append(adminOnly, cfg.Services.Create)...)
	services.Put("/:id", append(adminOnly, cfg.Services.Update)...)
	services.Delete("/:id", append(adminOnly, cfg.Services.Delete)...)

	trainings := api.Group("/trainings")
	trainings.Get("/", cfg.Trainings.List)
	trainings.Get("/featured", cfg.Trainings.ListFeatured)
	trainings.Get("/:id", cfg.Trainings.Get)
	trainings.Post("/", append(adminOnly, cfg.Trainings.Create)...)
	trainings.Put("/:id", append(adminOnly, cfg.Trainings.Update)...)
	trainings.Delete("/:id", append(adminOnly, cfg.Trainings.Delete)...)

	reviews := api.Group("/reviews")
	reviews.Get("/", cfg.Reviews.ListApproved)
	reviews.Post("/", cfg.Reviews.Submit)
	reviews.Get("/all", append(adminOnly, cfg.Reviews.ListAll)...)
	reviews.Put("/:id", append(adminOnly, cfg.Reviews.Moderate)...)
	reviews.Delete("/:id", append(adminOnly, cfg.Reviews.Delete)...)

	contact := api.Group("/contact")
	contact.Post("/", cfg.Contacts.Submit)
	contact.Get("/", append(adminOnly, cfg.Contacts.List)...)
	contact.Get("/:id", append(adminOnly, cfg.Contacts.Get)...)
	contact.Put("/:id/status", append(adminOnly, cfg.Contacts.UpdateStatus)...)
	contact.Delete("/:id", append(adminOnly, cfg.Contacts.Delete)...)

	bookings := api.Group("/bookings")
	bookings.Post("/", cfg.Bookings.Submit)
	bookings.Get("/", append(adminOnly, cfg.Bookings.List)...)
	bookings.Get("/:id", append(adminOnly, cfg.Bookings.Get)...)
	bookings.Put("/:id/status", append(adminOnly, cfg.Bookings.UpdateStatus)...)
	bookings.Delete("/:id", append(adminOnly, cfg.Bookings.Delete)...)

	menu := api.Group("/menu")
	menu.Get("/", cfg.Menu.List)
	menu.Get("/all", append(adminOnly, cfg.Menu.ListAll)...)
	menu.Get("/:id", cfg.Menu.Get)
	menu.Post("/", append(adminOnly, cfg.Menu.Create)...)
	menu.Put("/:id", append(adminOnly, cfg.Menu.Update)...)
	menu.Delete("/:id", append(adminOnly, cfg.Menu.Delete)...)
}
