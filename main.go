package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UmangSachdeva/SalesReport/app"
	"github.com/UmangSachdeva/SalesReport/config"
	"github.com/UmangSachdeva/SalesReport/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	appLog := logger.Component(log, logger.ComponentApp)

	if err := cfg.Validate(); err != nil {
		appLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	a, err := app.Open(connectCtx, cfg, log)
	cancel()
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to start")
	}

	go func() {
		<-ctx.Done()
		appLog.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.Close(shutdownCtx); err != nil {
			appLog.Error().Err(err).Msg("Shutdown error")
		}
	}()

	// Run returns after Close has finished when shutdown was signalled.
	if err := a.Run(ctx); err != nil {
		appLog.Error().Err(err).Msg("Server error")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.Close(shutdownCtx); err != nil {
			appLog.Error().Err(err).Msg("Shutdown error")
		}
		cancel()
		os.Exit(1)
	}

	appLog.Info().Msg("Server stopped gracefully")
}
