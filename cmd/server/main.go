package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgately/fyyur-backend/config"
	"github.com/mgately/fyyur-backend/internal/app/controller"
	"github.com/mgately/fyyur-backend/internal/app/repository"
	"github.com/mgately/fyyur-backend/internal/app/service"
	"github.com/mgately/fyyur-backend/internal/db"
	"github.com/mgately/fyyur-backend/internal/flash"
	"github.com/mgately/fyyur-backend/internal/router"
	"github.com/mgately/fyyur-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Fyyur server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Flash-message session store
	flash.Initialize(cfg.Session.Secret)

	// Initialize repositories
	venueRepo := repository.NewVenueRepository(db.GetDB())
	artistRepo := repository.NewArtistRepository(db.GetDB())
	showRepo := repository.NewShowRepository(db.GetDB())

	// Initialize services
	venueService := service.NewVenueService(venueRepo, showRepo, db.GetDB())
	artistService := service.NewArtistService(artistRepo, showRepo, db.GetDB())
	showService := service.NewShowService(showRepo, artistRepo, venueRepo, db.GetDB())

	// Initialize controllers
	venueController := controller.NewVenueController(venueService)
	artistController := controller.NewArtistController(artistService)
	showController := controller.NewShowController(showService)

	// Setup router
	r := router.NewRouter(venueController, artistController, showController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
