package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"maskcompare/config"
	"maskcompare/internal/container"
	"maskcompare/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(logger.Options{Dir: cfg.LogDir, Name: cfg.LogName, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	defer lg.Close()

	lg.Info().Msg("Starting selected image display")

	// Собираем зависимости; без CSV работать нечего
	appContainer, err := container.New(cfg, lg.Logger)
	if err != nil {
		lg.Fatal().Err(err).Msg("Failed to initialize")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := appContainer.ComparisonService.DisplaySelected(ctx, cfg.SelectedImages, cfg.Paths, cfg.UseOverlays)
	if err != nil {
		lg.Error().Err(err).Msg("Display interrupted")
		return
	}

	lg.Info().Int("shown", len(report.Shown)).Int("failed", len(report.Failed)).Msg("Done")
}
