package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Window.Title != "scrap" || cfg.Window.Width != 1024 || cfg.Window.Height != 740 {
		t.Fatalf("unexpected window defaults %#v", cfg.Window)
	}
	if cfg.StartURL != "https://servo.org" {
		t.Fatalf("unexpected start url %q", cfg.StartURL)
	}
	if cfg.Input.ClickTolerance != 64 || cfg.Input.LineHeight != 38 {
		t.Fatalf("unexpected input defaults %#v", cfg.Input)
	}
	if cfg.Session.MaxFlushRounds != 0 {
		t.Fatalf("flush should be unbounded by default, got %d", cfg.Session.MaxFlushRounds)
	}
	if cfg.LogLevel() != slog.LevelInfo {
		t.Fatalf("unexpected log level %v", cfg.LogLevel())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("window:\n  title: other\nlog:\n  level: debug\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "other" {
		t.Fatalf("expected overridden title, got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 1024 {
		t.Fatalf("expected default width to survive, got %d", cfg.Window.Width)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug, got %v", cfg.LogLevel())
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		data string
		path string
	}{
		{"window:\n  width: 0\n", "window.width"},
		{"window:\n  height: -1\n", "window.height"},
		{"input:\n  click_tolerance: 0\n", "input.click_tolerance"},
		{"input:\n  line_height: -3\n", "input.line_height"},
		{"session:\n  max_flush_rounds: -1\n", "session.max_flush_rounds"},
		{"start_url: not a url\n", "start_url"},
		{"log:\n  level: loud\n", "log.level"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.data))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: expected ValidationError, got %v", tt.data, err)
		}
		if verr.Path != tt.path {
			t.Fatalf("%q: expected path %q, got %q", tt.data, tt.path, verr.Path)
		}
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

