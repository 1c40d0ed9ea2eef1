package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "balance.yaml"

// Environment overrides. They win over the config file.
const (
	EnvLogLevel     = "BALANCE_LOG_LEVEL"
	EnvLessonsDir   = "BALANCE_LESSONS_DIR"
	EnvMetricsFile  = "BALANCE_METRICS_FILE"
	EnvMaxInputSize = "BALANCE_MAX_INPUT_SIZE"
)

// Themes accepted by the glamour renderer.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeNoTTY = "notty"
)

// Config is the user configuration of the balance CLI.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// MaxInputSize caps user supplied expressions, in bytes.
	MaxInputSize int `mapstructure:"max_input_size" yaml:"max_input_size"`
	// LessonsDir is a directory of exercise markdown files. Empty means the built-in set.
	LessonsDir string `mapstructure:"lessons_dir" yaml:"lessons_dir"`
	// MetricsFile receives the Prometheus text exposition on exit, if set.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
	Theme       string `mapstructure:"theme" yaml:"theme"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:     "info",
		MaxInputSize: 4096,
		Theme:        ThemeAuto,
	}
}

// Load reads a YAML config file, then applies environment overrides.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Treat as "no config"
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode goes through a generic map so mapstructure can coerce loose YAML types
// (e.g. max_input_size: "8192") and reject unknown keys.
func decode(data []byte, cfg *Config) error {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLessonsDir); v != "" {
		cfg.LessonsDir = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.MetricsFile = v
	}
	if v := os.Getenv(EnvMaxInputSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxInputSize, err)
		}
		cfg.MaxInputSize = size
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize)
	}
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight, ThemeNoTTY:
	default:
		return fmt.Errorf("unknown theme %q (expected auto, dark, light or notty)", c.Theme)
	}
	return nil
}
