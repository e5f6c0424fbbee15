package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"restroom-finder/internal/chat"
	"restroom-finder/internal/config"
	"restroom-finder/internal/providers/overpass"
	"restroom-finder/internal/resolver"
	"restroom-finder/internal/session"
	"restroom-finder/internal/store"
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	cfg         *config.Config
	pool        *pgxpool.Pool
	resolverSvc resolver.Service
	chatSvc     chat.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Connect to the facility dataset
	pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	facilityStore := store.NewFacilityStore(pool, logger)
	overpassClient := overpass.NewClient(
		cfg.Overpass.Endpoint,
		time.Duration(cfg.Overpass.TimeoutSeconds)*time.Second,
		logger,
	)

	// Compose the resolver: local dataset first, Overpass as fallback
	resolverSvc := resolver.NewService(
		resolver.NewLocalProvider(facilityStore, logger),
		resolver.NewRemoteProvider(overpassClient, logger),
		logger,
	)

	sessions := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	chatSvc := chat.NewService(resolverSvc, sessions, cfg, logger)

	app := &App{
		router:      router,
		logger:      logger,
		cfg:         cfg,
		pool:        pool,
		resolverSvc: resolverSvc,
		chatSvc:     chatSvc,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases held resources
func (app *App) Close() {
	app.pool.Close()
}
