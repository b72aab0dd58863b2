package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `tab_width = 4`)

	reloads := make(chan Config, 4)
	w, err := Watch(dir, func(cfg Config) { reloads <- cfg }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`tab_width = 8`), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.TabWidth != 8 {
			t.Errorf("reloaded TabWidth = %d, want 8", cfg.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherSeesFileCreatedLater(t *testing.T) {
	dir := t.TempDir()

	reloads := make(chan Config, 4)
	w, err := Watch(dir, func(cfg Config) { reloads <- cfg }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeConfig(t, dir, `default_mode = "standard"`)

	select {
	case cfg := <-reloads:
		if cfg.DefaultMode != "standard" {
			t.Errorf("reloaded DefaultMode = %q, want standard", cfg.DefaultMode)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `tab_width = 4`)

	reloads := make(chan Config, 4)
	w, err := Watch(dir, func(cfg Config) { reloads <- cfg }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing unrelated file: %v", err)
	}

	select {
	case <-reloads:
		t.Error("unrelated file change triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherKeepsOldConfigOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `tab_width = 4`)

	reloads := make(chan Config, 4)
	w, err := Watch(dir, func(cfg Config) { reloads <- cfg }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`tab_width = "broken`), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case <-reloads:
		t.Error("malformed file should not reach the reload callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
