package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRotateIfNeeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servebox.log")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rotateIfNeeded(path, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("original should be moved aside, stat err = %v", err)
	}
}

func TestRotateIfNeededUnderLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servebox.log")
	if err := os.WriteFile(path, []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rotateIfNeeded(path, 1024); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file under limit should stay put: %v", err)
	}
}
