package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"datepick/internal/model"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEPICK_CONFIG_DIR", dir)

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != model.ModeBoth || cfg.Format != "json" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.HistoryPath != filepath.Join(dir, "history.sqlite") {
		t.Fatalf("unexpected history path %q", cfg.HistoryPath)
	}
	if cfg.MinDate != "" || cfg.MaxTime != "" {
		t.Fatalf("expected no bounds by default: %#v", cfg.Constraints)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEPICK_CONFIG_DIR", dir)
	body := "mode: time\nmin_time: \"13:30\"\nmax_time: \"15:00\"\ntime_placeholder: Time\n"
	if err := os.WriteFile(filepath.Join(dir, "datepick.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DATEPICK_MAX_TIME", "16:00")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != model.ModeTime || cfg.MinTime != "13:30" || cfg.TimePlaceholder != "Time" {
		t.Fatalf("expected file values, got %#v", cfg)
	}
	if cfg.MaxTime != "16:00" {
		t.Fatalf("expected env to override file, got %q", cfg.MaxTime)
	}
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	t.Setenv("DATEPICK_CONFIG_DIR", t.TempDir())
	t.Setenv("DATEPICK_MODE", "week")

	_, err := Load(New())
	var inv *InvalidError
	if !errors.As(err, &inv) || inv.Key != "mode" {
		t.Fatalf("expected mode InvalidError, got %v", err)
	}
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	cfg := Config{Format: "xml"}
	var inv *InvalidError
	if err := cfg.Validate(); !errors.As(err, &inv) || inv.Key != "format" {
		t.Fatalf("expected format InvalidError, got %v", err)
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := Config{Timezone: "UTC"}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v err=%v", loc, err)
	}
	cfg.Timezone = "Mars/Olympus"
	var inv *InvalidError
	if err := cfg.Validate(); !errors.As(err, &inv) || inv.Key != "timezone" {
		t.Fatalf("expected timezone InvalidError, got %v", err)
	}
}
