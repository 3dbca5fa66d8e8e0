package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joeycumines/behaviorkit/internal/config"
)

// logConfig holds resolved logging configuration.
type logConfig struct {
	level   slog.Level
	json    bool
	logFile io.WriteCloser // nil if logging to the fallback writer
}

// resolveLogConfig resolves log configuration from flags and config values.
// Flag values take precedence; config values are used when a flag is empty.
// The caller must Close() the returned logConfig.logFile when done (if non-nil).
func resolveLogConfig(flagPath, flagLevel, flagFormat string, cfg *config.Config) (logConfig, error) {
	var lc logConfig
	if cfg == nil {
		cfg = config.NewConfig()
	}

	// Resolve log level: flag → config → "info".
	levelStr := flagLevel
	if levelStr == "" {
		levelStr = cfg.Log.Level
	}
	level, err := config.ParseLevel(levelStr)
	if err != nil {
		return lc, err
	}
	lc.level = level

	// Resolve format: flag → config → "text".
	format := flagFormat
	if format == "" {
		format = cfg.Log.Format
	}
	switch format {
	case "json":
		lc.json = true
	case "text", "":
	default:
		return lc, fmt.Errorf("invalid log format: %s", format)
	}

	// Resolve log path: flag → config → "".
	logPath := flagPath
	if logPath == "" {
		logPath = cfg.Log.File
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return lc, fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		lc.logFile = f
	}

	return lc, nil
}

// logger builds the slog.Logger, writing to the log file if one was
// configured and to fallback otherwise.
func (lc logConfig) logger(fallback io.Writer) *slog.Logger {
	w := fallback
	if lc.logFile != nil {
		w = lc.logFile
	}
	opts := &slog.HandlerOptions{Level: lc.level}
	if lc.json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
