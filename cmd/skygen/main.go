package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"skygen/internal/generation"
	"skygen/internal/infra"
	"skygen/internal/storage"
)

func main() {
	_ = godotenv.Load()

	save := flag.Bool("save", false, "Download the generated image after it is ready")
	out := flag.String("out", "", "Download directory (overrides SKYGEN_DOWNLOAD_DIR)")
	flag.Parse()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	prompt := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(prompt) == "" {
		logger.Fatal().Msg("skygen: usage: skygen [-save] [-out dir] <prompt>")
	}

	ctx := context.Background()
	client := generation.NewClient(generation.Options{BaseURL: cfg.APIBaseURL})
	ctrl := generation.NewController(client)

	updates := make(chan generation.Snapshot, 8)
	ctrl.Subscribe(func(snap generation.Snapshot) { updates <- snap })

	if !ctrl.Submit(ctx, prompt) {
		logger.Fatal().Msg("skygen: prompt must not be empty")
	}

	for snap := range updates {
		logger.Info().Str("state", snap.State.String()).Msg(snap.Status)
		switch snap.State {
		case generation.StateReady:
			logger.Info().Str("url", snap.ResultURL).Msg("image ready")
			if *save {
				download(ctx, logger, cfg, ctrl, *out)
			}
			return
		case generation.StateFailed:
			os.Exit(1)
		}
	}
}

func download(ctx context.Context, logger infra.Logger, cfg *infra.Config, ctrl *generation.Controller, out string) {
	dir := out
	if dir == "" {
		dir = cfg.DownloadDir
	}
	store, err := storage.NewFileStore(dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("skygen: failed to open download directory")
	}
	name, err := ctrl.Download(ctx, store)
	if err != nil {
		// Download failures are transient; the result URL stays usable.
		logger.Error().Err(err).Msg("skygen: download failed")
		return
	}
	logger.Info().Str("file", filepath.Join(store.BasePath(), name)).Msg("image saved")
}
