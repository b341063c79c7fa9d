package main

import (
	"context"
	"os"

	"github.com/arnobk/quillbase/backend/internal/router"
	"github.com/arnobk/quillbase/backend/pkg/config"
	"github.com/arnobk/quillbase/backend/pkg/firebase"
	"github.com/arnobk/quillbase/backend/pkg/gemini"
	"github.com/arnobk/quillbase/backend/pkg/imagestore"
	"github.com/arnobk/quillbase/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize databases")
	}
	defer db.CloseDB()

	ctx := context.Background()

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase")
	}

	// Initialize the Gemini draft generator
	generator, err := gemini.New(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}

	// Initialize object storage for cover images
	images, err := imagestore.New(imagestore.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize image storage")
	}
	if err := images.EnsureBucket(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure image bucket")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, router.Deps{
		Postgres:     db.Postgres,
		Mongo:        db.Mongo,
		FirebaseAuth: firebaseApp.AuthClient,
		Images:       images,
		Generator:    generator,
		Config:       cfg,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
