package main

import (
	"context"
	"ctchen222/travel-assistant/internal/api/controller"
	"ctchen222/travel-assistant/internal/api/repository"
	"ctchen222/travel-assistant/internal/api/service"
	"ctchen222/travel-assistant/internal/auth"
	"ctchen222/travel-assistant/internal/config"
	"ctchen222/travel-assistant/internal/db"
	"ctchen222/travel-assistant/internal/logger"
	"ctchen222/travel-assistant/internal/provider"
	"ctchen222/travel-assistant/internal/server"
	"ctchen222/travel-assistant/internal/telemetry"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize telemetry before the logger so the otelslog bridge picks up the provider
	shutdown, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(cfg.LogLevel)

	// Initialize database
	DB, err := db.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer DB.Close()

	if err := db.InitSchema(ctx, DB); err != nil {
		return err
	}

	gemini, err := provider.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}

	// Create repositories
	userRepo := repository.NewUserRepository(DB)
	requestRepo := repository.NewRequestRepository(DB)

	// Create services
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := service.NewUserService(userRepo, auth.NewPasswordHasher(cfg.BcryptCost), tokens)
	assistantService := service.NewAssistantService(requestRepo, gemini, cfg.AskTimeout)

	// Create controllers
	userController := controller.NewUserController(userService)
	assistantController := controller.NewAssistantController(assistantService)

	srv := server.NewServer(server.Options{CORSOrigins: cfg.CORSOrigins}, userController, assistantController, tokens)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", cfg.HTTPAddr, "db.driver", cfg.DatabaseDriver, "model", cfg.GeminiModel)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exiting")
	return nil
}
