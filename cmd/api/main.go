package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/studio-cms/internal/api/http"
	"github.com/spec-kit/studio-cms/internal/api/http/handlers"
	"github.com/spec-kit/studio-cms/internal/auth"
	"github.com/spec-kit/studio-cms/internal/bootstrap"
	"github.com/spec-kit/studio-cms/internal/cache"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/events"
	"github.com/spec-kit/studio-cms/internal/observability"
	"github.com/spec-kit/studio-cms/internal/persistence"
	"github.com/spec-kit/studio-cms/internal/repository"
	"github.com/spec-kit/studio-cms/internal/seed"
	"github.com/spec-kit/studio-cms/internal/service"
	"github.com/spec-kit/studio-cms/internal/storage"
	"github.com/spec-kit/studio-cms/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	trainingRepo := repository.NewTrainingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	menuRepo := repository.NewMenuItemRepository(pool)

	// The admin bootstrap must finish before the listener opens: serving
	// without it risks a permanently inaccessible admin surface.
	if err := bootstrap.EnsureAdmin(ctx, userRepo, cfg.Admin, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("admin bootstrap failed", zap.Error(err))
	}

	if cfg.App.SeedSampleData {
		if err := seed.SampleContent(ctx, serviceRepo, trainingRepo, logger); err != nil {
			logger.Warn("sample content seeding failed", zap.Error(err))
		}
	}

	uploads, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		logger.Fatal("failed to init uploads store", zap.Error(err))
	}

	contentCache := cache.New(redis.Client, cfg.Redis.CacheTTL, logger)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	adminService := service.NewAdminService(cfg.Auth, service.AdminDependencies{
		Users:     userRepo,
		Services:  serviceRepo,
		Trainings: trainingRepo,
		Reviews:   reviewRepo,
		Contacts:  contactRepo,
		Bookings:  bookingRepo,
		MenuItems: menuRepo,
	})
	catalogService := service.NewCatalogService(serviceRepo, trainingRepo, menuRepo, contentCache, uploads)
	reviewService := service.NewReviewService(reviewRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, trainingRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.NewNotificationWorker(notificationService, logger).Start()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Uploads.MaxBytes) + 1024*1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Admin:          handlers.NewAdminHandler(adminService),
		Services:       handlers.NewServicesHandler(catalogService, uploads),
		Trainings:      handlers.NewTrainingsHandler(catalogService, uploads),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Menu:           handlers.NewMenuHandler(catalogService, uploads),
		AuthMiddleware: authMiddleware,
		UploadsDir:     uploads.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
