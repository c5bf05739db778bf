// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/socnet/internal/config"
)

// newLogger builds the slog logger described by cfg. With cfg.File set the
// handler writes to a size-rotated file; otherwise to stderr. The returned
// closer releases the file.
func newLogger(cfg config.Log, stderr io.Writer) (*slog.Logger, func(context.Context) error, error) {
	w := stderr
	closer := func(context.Context) error { return nil }
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
		}
		w = lj
		closer = func(context.Context) error { return lj.Close() }
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h), closer, nil
}

// parseLevel maps a profile level to slog; unknown values mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
