package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/wonderbd/tourism-backend/internal/auth"
	"github.com/wonderbd/tourism-backend/internal/handlers"
	"github.com/wonderbd/tourism-backend/internal/payments"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"github.com/wonderbd/tourism-backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config, logger *zap.SugaredLogger) {
	// Root and health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Welcome to Wonder Bangladesh"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewUserRepository(db)
	storyRepo := repositories.NewStoryRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	guideRepo := repositories.NewTourGuideRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	packageRepo := repositories.NewPackageRepository(db)

	// --- External services ---
	tokenService := auth.NewTokenService(cfg.AccessTokenSecret)
	paymentClient := payments.NewStripeClient(cfg.StripeSecretKey)

	// Auth demo routes
	authHandler := handlers.NewAuthHandler(tokenService)
	authHandler.RegisterAuthRoutes(e)
	logger.Info("Auth routes configured.")

	// User routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(e)
	logger.Info("User routes configured.")

	// Story routes
	storyHandler := handlers.NewStoryHandler(storyRepo)
	storyHandler.RegisterStoryRoutes(e)
	logger.Info("Story routes configured.")

	// Booking routes
	bookingHandler := handlers.NewBookingHandler(bookingRepo)
	bookingHandler.RegisterBookingRoutes(e)
	logger.Info("Booking routes configured.")

	// Payment routes
	paymentHandler := handlers.NewPaymentHandler(paymentRepo, paymentClient, logger)
	paymentHandler.RegisterPaymentRoutes(e)
	logger.Info("Payment routes configured.")

	// Tour guide routes
	guideHandler := handlers.NewTourGuideHandler(guideRepo)
	guideHandler.RegisterTourGuideRoutes(e)
	logger.Info("Tour guide routes configured.")

	// Package routes
	packageHandler := handlers.NewPackageHandler(packageRepo)
	packageHandler.RegisterPackageRoutes(e)
	logger.Info("Package routes configured.")

	// Guide application routes
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, guideRepo, userRepo, logger)
	applicationHandler.RegisterApplicationRoutes(e)
	logger.Info("Guide application routes configured.")

	// Admin stats routes
	statsHandler := handlers.NewStatsHandler(userRepo, guideRepo, storyRepo, packageRepo, bookingRepo)
	statsHandler.RegisterStatsRoutes(e)
	logger.Info("Stats routes configured.")

	logger.Info("All routes configured.")
}
