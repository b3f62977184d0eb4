// Package config holds the shell's settings. The defaults are compiled in;
// Parse overlays a YAML document on top of them.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Input struct {
	ClickTolerance float64 `yaml:"click_tolerance"` // squared device pixels
	LineHeight     float64 `yaml:"line_height"`     // pixels per scrolled line
}

type Session struct {
	MaxFlushRounds int `yaml:"max_flush_rounds"` // 0 = unbounded
}

type Logging struct {
	Level string `yaml:"level"`
}

type Config struct {
	Window   Window  `yaml:"window"`
	StartURL string  `yaml:"start_url"`
	Input    Input   `yaml:"input"`
	Session  Session `yaml:"session"`
	Logging  Logging `yaml:"log"`
}

// ValidationError reports an invalid setting.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Default returns the compiled-in configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	return cfg, cfg.Validate()
}

// Parse overlays data onto the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("must be positive")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("must be positive")}
	}
	if c.Input.ClickTolerance <= 0 {
		return &ValidationError{Path: "input.click_tolerance", Err: fmt.Errorf("must be positive")}
	}
	if c.Input.LineHeight <= 0 {
		return &ValidationError{Path: "input.line_height", Err: fmt.Errorf("must be positive")}
	}
	if c.Session.MaxFlushRounds < 0 {
		return &ValidationError{Path: "session.max_flush_rounds", Err: fmt.Errorf("must not be negative")}
	}
	u, err := url.Parse(c.StartURL)
	if err != nil || !u.IsAbs() {
		return &ValidationError{Path: "start_url", Err: fmt.Errorf("%q is not an absolute URL", c.StartURL)}
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Path: "log.level", Err: err}
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Logging.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
}
