package app

import (
	"log/slog"
	"os"

	"logistics-dispatch/internal/config"
	"logistics-dispatch/internal/logx"
)

// NewLogger builds the zap production logger at the configured level.
// If zap cannot be built the service still starts with a JSON slog logger.
func NewLogger(cfg *config.Config) logx.Logger {
	logger, err := logx.NewProduction(cfg.Log.Level)
	if err == nil {
		return logger
	}
	fallback := logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	fallback.Warn("zap logger unavailable, using slog", logx.String("level", cfg.Log.Level), logx.Err(err))
	return fallback
}
