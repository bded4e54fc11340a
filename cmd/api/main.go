package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/warungkita/warung-pos/internal/app"
	"github.com/warungkita/warung-pos/internal/modules/catalog"
	"github.com/warungkita/warung-pos/internal/modules/pos"
	"github.com/warungkita/warung-pos/internal/modules/report"
	"github.com/warungkita/warung-pos/internal/storage"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := app.NewLogger(cfg)

	ctx := context.Background()

	var store storage.BlobStore
	switch cfg.StorageBackend {
	case "redis":
		store, err = storage.NewRedisStore(ctx, cfg.RedisAddr)
	default:
		store, err = storage.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		logger.Error("open blob store", slog.Any("error", err))
		os.Exit(1)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewBlobRepository(store)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart, checkout & order history ──────────────────────
	orderRepo := pos.NewBlobRepository(store)
	posService := pos.NewService(orderRepo, catalogRepo, logger, cfg.StrictStock)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Sales report ────────────────────────────────────────
	report.NewHandler(posService).RegisterRoutes(router)

	logger.Info("warung-pos API starting",
		slog.String("addr", cfg.AppAddr),
		slog.String("storage", cfg.StorageBackend),
		slog.Bool("strict_stock", cfg.StrictStock))
	if err := http.ListenAndServe(cfg.AppAddr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
