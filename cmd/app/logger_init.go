package main

import (
	"log/slog"
	"os"

	"github.com/osse101/BakeWatt_Go/internal/bootstrap"
	"github.com/osse101/BakeWatt_Go/internal/config"
	"github.com/osse101/BakeWatt_Go/internal/logger"
)

// initLogger writes to stdout and a session file. When the log directory is
// unusable it falls back to stdout alone.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err == nil {
		return logFile
	}

	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
	slog.Warn("File logging disabled", "error", err)
	return nil
}
