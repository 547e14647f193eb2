package app

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/stride/internal/pathutil"
)

const envDebug = "STRIDE_DEBUG"

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
)

// setupLogging sends slog output to a rotating file in the data directory.
// The returned writer must be closed on exit.
func setupLogging() *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	level := slog.LevelInfo
	if _, ok := os.LookupEnv(envDebug); ok {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)

	return w
}
