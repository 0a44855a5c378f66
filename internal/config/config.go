// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML settings of the silences command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/pcmsilence/silence"
	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Slog maps l to a slog level. Unknown values map to info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top-level configuration.
type Config struct {
	// MinSilence is the shortest run reported as silence, e.g. "500ms".
	MinSilence time.Duration `yaml:"min_silence"`

	// ThresholdDB is the loudness cutoff in decibels; it must not be positive.
	ThresholdDB int `yaml:"threshold_db"`

	// Format overrides the container format taken from the file extension.
	Format string `yaml:"format"`

	LogLevel LogLevel `yaml:"log_level"`

	// SplitDir, when set, receives one WAV file per non-silent segment.
	SplitDir string `yaml:"split_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MinSilence:  500 * time.Millisecond,
		ThresholdDB: silence.DefaultThresholdDB,
		LogLevel:    LogInfo,
	}
}

// Policy returns the detection policy described by c.
func (c *Config) Policy() silence.Policy {
	return silence.Policy{MinSilence: c.MinSilence, ThresholdDB: c.ThresholdDB}
}

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.MinSilence <= 0 {
		errs = append(errs, fmt.Errorf("min_silence %v must be positive", cfg.MinSilence))
	}
	if cfg.ThresholdDB > 0 {
		errs = append(errs, fmt.Errorf("threshold_db %d must be zero or negative", cfg.ThresholdDB))
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.SplitDir != "" {
		if fi, err := os.Stat(cfg.SplitDir); err == nil && !fi.IsDir() {
			errs = append(errs, fmt.Errorf("split_dir %q is not a directory", cfg.SplitDir))
		}
	}

	return errors.Join(errs...)
}
