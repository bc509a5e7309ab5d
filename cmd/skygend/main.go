package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"skygen/internal/http/handlers"
	"skygen/internal/http/httpapi"
	"skygen/internal/infra"
	"skygen/internal/jobstore"
	"skygen/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storagePath := cfg.StoragePath
	if !filepath.IsAbs(storagePath) {
		if abs, err := filepath.Abs(storagePath); err == nil {
			storagePath = abs
		}
	}
	files, err := storage.NewFileStore(storagePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("skygend: failed to configure storage")
	}

	var store jobstore.Store
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("skygend: db connection failed")
		}
		defer pool.Close()
		store = jobstore.NewPostgresStore(pool)
		logger.Info().Msg("skygend: using postgres job store")
	} else {
		store = jobstore.NewMemoryStore()
		logger.Info().Msg("skygend: using in-memory job store")
	}

	app := handlers.NewApp(store, files, logger, cfg.PublicBaseURL, cfg.RenderDelay)
	router := httpapi.NewRouter(app, logger, cfg.RateLimitPerMin)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("skygend listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("skygend: http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("skygend: failed to shutdown server")
	}
	logger.Info().Msg("skygend: stopped")
}
