// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	authRouter "github.com/declanmoran/omahonys-pub/internal/auth/router"
	bandRouter "github.com/declanmoran/omahonys-pub/internal/band/router"
	"github.com/declanmoran/omahonys-pub/internal/config"
	"github.com/declanmoran/omahonys-pub/internal/database"
	"github.com/declanmoran/omahonys-pub/internal/health"
	matchRouter "github.com/declanmoran/omahonys-pub/internal/match/router"
	menuRouter "github.com/declanmoran/omahonys-pub/internal/menu/router"
	"github.com/declanmoran/omahonys-pub/internal/middleware"
	"github.com/declanmoran/omahonys-pub/internal/storage"
	"github.com/declanmoran/omahonys-pub/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck // flushing on exit, nothing to do about failure

	loc, err := cfg.Venue.Location()
	if err != nil {
		zlog.Fatalw("failed to resolve venue timezone", "error", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db) //nolint:errcheck // closing on exit

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	blobs, err := storage.NewDiskStore(cfg.Storage)
	if err != nil {
		zlog.Fatalw("failed to set up blob storage", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))

	requireOperator := middleware.RequireOperator(cfg.Auth.JWTSecret)

	authSvc := authRouter.RegisterRoutes(r, db, cfg.Auth, zlog)
	matchRouter.RegisterRoutes(r, db, loc, requireOperator, zlog)
	bandRouter.RegisterRoutes(r, db, loc, requireOperator, zlog)
	menuRouter.RegisterRoutes(r, db, blobs, requireOperator, zlog)

	healthHandler := health.New(db, zlog)
	r.GET("/health", healthHandler.Check)

	// Uploaded menu PDFs and the built site
	r.Static("/files", blobs.Dir())
	r.Static("/assets", "web/assets")
	r.NoRoute(func(c *gin.Context) {
		c.File("web/index.html")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := authSvc.Seed(ctx); err != nil {
		cancel()
		zlog.Fatalw("failed to seed operator account", "error", err)
	}
	cancel()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zlog.Infow("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalw("server stopped", "error", err)
	}
}
