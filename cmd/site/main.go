package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"medsite/internal/adapters/web"
	"medsite/internal/application"
	"medsite/internal/config"
	"medsite/internal/infrastructure/api"
	"medsite/internal/infrastructure/database"
	"medsite/internal/infrastructure/i18n"
	"medsite/internal/infrastructure/static"
	"medsite/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("site stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	source, err := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	if err != nil {
		return err
	}

	tables, err := static.Load()
	if err != nil {
		return err
	}

	var snapshots output.SnapshotRepository
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		snapshots = database.NewSnapshotRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, running without snapshots")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	content := application.NewContentService(source, snapshots, tables, translator, logger)
	handler := web.NewHandler(content, translator, logger)

	return web.NewServer(cfg.ListenAddr, handler, logger).Start(ctx)
}
