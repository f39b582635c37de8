package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/pmorten/scoreboard-system/config"
	"github.com/pmorten/scoreboard-system/db"
	"github.com/pmorten/scoreboard-system/handlers"
	"github.com/pmorten/scoreboard-system/live"
	"github.com/pmorten/scoreboard-system/repositories"
	api "github.com/pmorten/scoreboard-system/routes"
	"github.com/pmorten/scoreboard-system/services"
	"github.com/pmorten/scoreboard-system/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	// Avatar storage is optional; without R2 configuration the upload
	// endpoint reports avatars as disabled.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize avatar storage", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("avatar storage initialized")
	} else {
		logger.Info("avatar storage not configured, uploads disabled")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()

	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	scoreRepo := repositories.NewPostgresScoreRepository(dbConn)

	authService := services.NewAuthService(playerRepo, cfg.SitePasswordHash)
	playerService := services.NewPlayerService(playerRepo, uploader)
	gameService := services.NewGameService(gameRepo, playerRepo)
	scoreService := services.NewScoreService(scoreRepo, playerRepo, gameRepo, wsHub)
	scoreboardService := services.NewScoreboardService(playerRepo, gameRepo, scoreRepo, uploader)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	playerHandler := handlers.NewPlayerHandler(playerService)
	gameHandler := handlers.NewGameHandler(gameService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	scoreboardHandler := handlers.NewScoreboardHandler(scoreboardService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSOrigins,
		cfg.JWTSecretKey,
		authHandler,
		playerHandler,
		gameHandler,
		scoreHandler,
		scoreboardHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
