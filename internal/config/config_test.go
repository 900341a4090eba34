package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	in := cfg.Inputs()
	if in.CarCost != 25000 {
		t.Fatalf("default car cost = %v, want 25000", in.CarCost)
	}
	if in.DailyRate != 50 {
		t.Fatalf("default daily rate = %v, want 50", in.DailyRate)
	}
	if in.RentalDays != 15 {
		t.Fatalf("default rental days = %v, want 15", in.RentalDays)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("default inputs fail validation: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load on missing file = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists reported true with no config on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Defaults.CarCost = 48000
	cfg.Defaults.DailyRate = 120
	cfg.Defaults.RentalDays = 22
	cfg.Appearance.Theme = "catppuccin-mocha"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists reported false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "turoi"), 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[defaults]\ndaily_rate = 80.0\n"
	if err := os.WriteFile(filepath.Join(dir, "turoi", "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Defaults.DailyRate != 80 {
		t.Fatalf("daily rate = %v, want 80", cfg.Defaults.DailyRate)
	}
	// Untouched keys keep their defaults
	if cfg.Defaults.CarCost != 25000 {
		t.Fatalf("car cost = %v, want default 25000", cfg.Defaults.CarCost)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q, want default flexoki-dark", cfg.Appearance.Theme)
	}
}
