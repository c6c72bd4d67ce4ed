package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/web"
)

func main() {
	cfg, err := web.ParseConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	service := gameapi.NewClient(cfg.ServerURL, gameapi.WithLogger(logger))

	router := web.NewRouter(web.RouterConfig{
		Logger:       logger,
		Service:      service,
		Clock:        clock.New(),
		CookieMaxAge: cfg.CookieMaxAge,
	})

	server := web.NewServer(router, cfg, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("api", cfg.ServerURL),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
