// Package logger provides the zerolog-based structured logger for the
// taxhawk demo binary, plus Scoped, the "component" tagging convention
// every package under internal/ uses so a log line can be traced back to
// the check registry, the orchestrator, the scheduler, or the HTTP layer
// that emitted it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration.
type Config struct {
	Level     string // debug, info, warn, error
	Pretty    bool   // enable pretty console output
	Component string // optional top-level "component" tag, e.g. "httpapi"
}

// New creates a new structured logger.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	base := zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger()

	if cfg.Component != "" {
		base = Scoped(base, cfg.Component)
	}
	return base
}

// Scoped returns a child of base tagged with a "component" field. Every
// internal/ package that owns a long-lived object (the check registry,
// the orchestrator, the scheduler, the HTTP server) calls this once in
// its constructor instead of repeating the With().Str(...) boilerplate
// inline.
func Scoped(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// SetGlobalLogger sets the package-level logger.
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}
