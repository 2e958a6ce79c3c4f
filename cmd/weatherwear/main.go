package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"weatherwear/internal/config"
	"weatherwear/internal/menu"
	"weatherwear/internal/providers/rest"
	"weatherwear/internal/recommend"
	"weatherwear/internal/weather"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logs go to stderr so they do not interleave with the menu
	logger := cfg.NewLoggerTo(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doer := rest.NewClient(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	recommender := recommend.NewService(weather.NewWeatherService(cfg, doer, logger), logger)

	if err := menu.New(os.Stdin, os.Stdout, recommender, logger).Run(ctx); err != nil {
		logger.Error("menu failed", "error", err)
		os.Exit(1)
	}
}
