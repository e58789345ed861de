package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/seuusuario/servebox/internal/settings"
)

type App struct {
	Settings *settings.Settings
	Paths    *Paths
	Logger   *slog.Logger
	Started  time.Time
}

func New(st *settings.Settings) (*App, error) {
	paths, err := NewPaths()
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}

	if err := EnsureDirectories(paths); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	logger, err := NewLogger(paths, st.IsDaemon(), st.HitRefresh())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return &App{
		Settings: st,
		Paths:    paths,
		Logger:   logger,
		Started:  time.Now(),
	}, nil
}
