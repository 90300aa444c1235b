package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/sammytumzy/TunmzyTech/internal/config"
)

// New builds the process-wide logger from config. JSON to stdout in
// production, console writer otherwise.
func New(cfg *config.Config) zerolog.Logger {
	var logLevel zerolog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"

	var baseLogger zerolog.Logger
	if cfg.Environment.IsProduction() && cfg.Log.Format == "json" {
		baseLogger = zerolog.New(os.Stdout)
	} else {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		baseLogger = zerolog.New(consoleWriter)
	}

	return baseLogger.
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "tunmzytech-api").
		Str("environment", cfg.Environment.Name).
		Logger()
}
