package main

import (
	"log/slog"

	"weatherwear/internal/config"
	"weatherwear/internal/providers/rest"
	"weatherwear/internal/recommend"
	"weatherwear/internal/weather"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	recommendService recommend.Service
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	doer := rest.NewClient(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	weatherSvc := weather.NewWeatherService(cfg, doer, logger)

	return NewAppWithService(cfg, recommend.NewService(weatherSvc, logger), logger)
}

// NewAppWithService creates an application around an existing recommendation service
func NewAppWithService(cfg *config.Config, recommendService recommend.Service, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:           router,
		logger:           logger,
		recommendService: recommendService,
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
