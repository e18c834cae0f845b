package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.name, err)
		}
		if level != tt.expected {
			t.Errorf("%q: expected %v, got %v", tt.name, tt.expected, level)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "logs", "accelplot.log")
	cfg := DefaultConfig()
	cfg.Level = "info"
	cfg.File = path

	logger, closeFn, err := Setup(cfg)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	logger.Info("loaded recording", "rows", 8)
	logger.Debug("hidden")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "loaded recording") || !strings.Contains(out, "rows=8") {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if L() != logger {
		t.Error("expected L to return the configured logger")
	}
}

func TestSetupBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	if _, _, err := Setup(cfg); err == nil {
		t.Error("expected error")
	}
}
