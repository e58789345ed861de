package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// NewLogger builds the process logger. Interactive runs log text to stdout;
// daemon runs append JSON to a rotated file under the logs directory.
// Hit-refresh is the development mode, so it also lowers the level to debug.
func NewLogger(paths *Paths, daemon, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if !daemon {
		logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
		slog.SetDefault(logger)
		return logger, nil
	}

	logPath := filepath.Join(paths.Logs, "servebox.log")
	if err := rotateIfNeeded(logPath, 10*1024*1024); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, opts))
	slog.SetDefault(logger)
	return logger, nil
}

func rotateIfNeeded(path string, maxSize int64) error {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if st.Size() <= maxSize {
		return nil
	}
	rotated := path + ".1"
	_ = os.Remove(rotated)
	return os.Rename(path, rotated)
}
