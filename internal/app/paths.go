package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Paths struct {
	Base string
	Logs string
	Home string
}

func NewPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}

	base := filepath.Join(home, ".servebox")
	return &Paths{
		Base: base,
		Logs: filepath.Join(base, "logs"),
		Home: home,
	}, nil
}

func EnsureDirectories(paths *Paths) error {
	dirs := []struct {
		path string
		perm fs.FileMode
	}{
		{paths.Base, 0o700},
		{paths.Logs, 0o755},
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d.path, d.perm); err != nil {
			return fmt.Errorf("create directory %s: %w", d.path, err)
		}
		if err := os.Chmod(d.path, d.perm); err != nil {
			return fmt.Errorf("set permissions %s: %w", d.path, err)
		}
	}

	return nil
}
