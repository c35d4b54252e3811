package common

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// InitLogger builds the JSON logger every command uses and installs it as
// the slog default. A .env file, if present, is loaded first so LOG_LEVEL
// and the DB settings can live there.
func InitLogger() *slog.Logger {
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
