package main

import (
	"fmt"
	"os"

	"docwatch/internal/api"
	"docwatch/internal/config"
	"docwatch/internal/logging"
	"docwatch/internal/storage"
	"docwatch/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("failed to open tag cache: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.NewHTTPClient(cfg.ServerURL, cfg.AuthToken, logger)

	logger.Info().Str("server", cfg.ServerURL).Msg("docwatch starting")
	if err := ui.Run(client, store, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("program error")
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
