package router

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/arnobk/quillbase/backend/internal/handlers"
	"github.com/arnobk/quillbase/backend/internal/middleware"
	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/arnobk/quillbase/backend/internal/repositories"
	"github.com/arnobk/quillbase/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	e.HTTPErrorHandler = errorEnvelopeHandler
}

// errorEnvelopeHandler maps every failure to the uniform
// {"success": false, "message": ...} envelope. Only the human-readable
// message leaves the process, never an internal error type or stack trace.
func errorEnvelopeHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	} else if err != nil {
		message = err.Error()
	}

	if jsonErr := c.JSON(code, echo.Map{"success": false, "message": message}); jsonErr != nil {
		log.Error().Err(jsonErr).Msg("failed to write error response")
	}
}

// Deps bundles the collaborators injected into the route tree
type Deps struct {
	Postgres     *gorm.DB
	Mongo        *mongo.Client
	FirebaseAuth *auth.Client
	Images       handlers.ImageUploader
	Generator    handlers.ContentGenerator
	Config       *config.Config
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Deps) error {
	if err := deps.Postgres.AutoMigrate(&models.User{}); err != nil {
		return err
	}
	log.Info().Msg("PostgreSQL auto-migrations completed")

	// Health and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	mongoDB := deps.Mongo.Database(deps.Config.MongoDatabase)
	userRepo := repositories.NewPostgresUserRepository(deps.Postgres)
	blogRepo := repositories.NewMongoBlogRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, deps.FirebaseAuth, deps.Config.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	public := e.Group("/api/v1")

	blogHandler := handlers.NewBlogHandler(blogRepo, commentRepo, deps.Images, deps.Generator)
	blogHandler.RegisterPublicBlogRoutes(public)

	commentHandler := handlers.NewCommentHandler(commentRepo, blogRepo)
	commentHandler.RegisterCommentRoutes(public)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(deps.Config.JWTSecret))

	blogHandler.RegisterBlogRoutes(api)

	reactionHandler := handlers.NewReactionHandler(blogRepo)
	reactionHandler.RegisterReactionRoutes(api)

	adminHandler := handlers.NewAdminHandler(commentRepo, blogRepo)
	adminHandler.RegisterAdminRoutes(api)

	log.Info().Msg("All routes configured")
	return nil
}
