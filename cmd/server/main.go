package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/placementhub/placement-portal/internal/app"
	"github.com/placementhub/placement-portal/internal/config"
	"github.com/placementhub/placement-portal/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := bootLog()
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.App.AppName, cfg.App.IsDevelopment())

	container, err := app.NewContainer(cfg, log, "migrations")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap")
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error().Err(err).Msg("cleanup error")
		}
	}()

	server := app.New(container)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Fiber.Listen(addr)
	}()
	log.Info().Str("addr", addr).Msg("server listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}
}

func bootLog() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
