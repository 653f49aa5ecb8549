package logger

import (
	"log/slog"
	"os"

	"github.com/vovaf709/cinema-bot/configs"
)

// NewLogger builds the app logger: human-readable debug output for dev,
// JSON at info level otherwise.
func NewLogger(cfg *configs.Config) *slog.Logger {
	switch cfg.Env {
	case "dev":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
