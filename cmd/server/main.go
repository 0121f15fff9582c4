package main

import (
	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/router"
	"github.com/wonderbd/tourism-backend/internal/validators"
	"github.com/wonderbd/tourism-backend/pkg/config"
	"go.uber.org/zap"
)

func newLogger(env string) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync()

	// Initialize database connection
	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB(logger)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Database, cfg, logger)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
