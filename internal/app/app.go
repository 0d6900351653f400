package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/internal/database"
	"github.com/onefitted/fitted/internal/handlers"
	"github.com/onefitted/fitted/internal/middleware"
	"github.com/onefitted/fitted/internal/services"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine

	consumerCancel context.CancelFunc
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	svcs, err := services.New(cfg, app.logger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = svcs

	app.handlers, err = handlers.New(app.logger, svcs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	app.setupRouter()
	app.startWearConsumer()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// startWearConsumer drains the wear-event topic into the wardrobe store.
// Failed events are dead-lettered by the message bus.
func (a *App) startWearConsumer() {
	ctx, cancel := context.WithCancel(context.Background())
	a.consumerCancel = cancel

	go func() {
		err := a.services.MessageBus.ConsumeWearEvents(ctx, a.services.Wardrobe.ApplyWearEvent)
		if err != nil && ctx.Err() == nil {
			a.logger.WithError(err).Error("Wear event consumer stopped")
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if a.consumerCancel != nil {
		a.consumerCancel()
	}

	if err := a.services.MessageBus.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing message bus")
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Health check endpoint (no auth required)
	router.GET("/health", a.handlers.Health.Check)

	// Prometheus metrics endpoint (no auth required)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Token exchange (no auth required)
	router.POST("/auth/token", a.handlers.Auth.Token)

	// API routes
	api := router.Group("/api/v1")
	{
		api.Use(middleware.Auth(a.services.Auth, a.logger))
		api.Use(middleware.RateLimit(a.services.RateLimit, a.logger))

		wardrobe := api.Group("/wardrobe")
		{
			wardrobe.GET("", a.handlers.Wardrobe.List)
			wardrobe.POST("/items", a.handlers.Wardrobe.Create)
			wardrobe.POST("/items/:itemId/wear", a.handlers.Wardrobe.Wear)
		}

		api.GET("/recommendations", a.handlers.Recommendation.Get)

		insights := api.Group("/insights")
		{
			insights.GET("/sustainability", a.handlers.Insights.Sustainability)
		}
	}

	a.router = router
}
