// Package config loads the settings that shape how Strings allocate,
// grow and measure text, from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bulga138/growstr"
	"github.com/bulga138/growstr/alloc"
	"github.com/bulga138/growstr/growth"
)

// Allocator kinds.
const (
	KindHeap = "heap"
	KindMmap = "mmap"
)

// Config holds every tunable setting.
type Config struct {
	Growth    Growth    `toml:"growth" yaml:"growth"`
	Allocator Allocator `toml:"allocator" yaml:"allocator"`
	Width     Width     `toml:"width" yaml:"width"`
	Log       Log       `toml:"log" yaml:"log"`
}

// Growth configures the growth policy.
type Growth struct {
	Factor      float64 `toml:"factor" yaml:"factor"`
	MinCapacity int     `toml:"min_capacity" yaml:"min_capacity"`
}

// Allocator selects and decorates the allocator.
type Allocator struct {
	Kind string `toml:"kind" yaml:"kind"`
	// MaxBytes caps outstanding bytes; 0 means unlimited.
	MaxBytes int64 `toml:"max_bytes" yaml:"max_bytes"`
	// LogCalls logs every allocator call at debug level.
	LogCalls bool `toml:"log_calls" yaml:"log_calls"`
}

// Width configures display measurement.
type Width struct {
	EastAsian bool `toml:"east_asian" yaml:"east_asian"`
}

// Log configures the logger returned by Config.Logger.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	p := growth.Default()
	return Config{
		Growth:    Growth{Factor: p.Factor, MinCapacity: p.MinCapacity},
		Allocator: Allocator{Kind: KindHeap},
		Log:       Log{Level: "info"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "growstr", "config.toml"), nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path means
// DefaultPath; a missing file yields the defaults. Files ending in .yaml
// or .yml are parsed as YAML, anything else as TOML. Unknown keys are an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch formatOf(path) {
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	switch formatOf(path) {
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("growth: %w", err)
	}
	switch c.Allocator.Kind {
	case KindHeap, KindMmap:
	default:
		return fmt.Errorf("allocator: unknown kind %q", c.Allocator.Kind)
	}
	if c.Allocator.MaxBytes < 0 {
		return fmt.Errorf("allocator: max_bytes must not be negative, got %d", c.Allocator.MaxBytes)
	}
	if _, err := c.level(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Policy returns the configured growth policy.
func (c Config) Policy() growth.Policy {
	return growth.Policy{Factor: c.Growth.Factor, MinCapacity: c.Growth.MinCapacity}
}

// NewAllocator builds the configured allocator. logger receives allocator
// call records when Allocator.LogCalls is set.
func (c Config) NewAllocator(logger *slog.Logger) (alloc.Allocator, error) {
	var a alloc.Allocator
	switch c.Allocator.Kind {
	case KindHeap:
		a = alloc.Heap{}
	case KindMmap:
		m, err := alloc.NewMmap()
		if err != nil {
			return nil, fmt.Errorf("allocator %q: %w", c.Allocator.Kind, err)
		}
		a = m
	default:
		return nil, fmt.Errorf("allocator: unknown kind %q", c.Allocator.Kind)
	}

	if c.Allocator.MaxBytes > 0 {
		a = alloc.NewLimit(a, c.Allocator.MaxBytes)
	}
	if c.Allocator.LogCalls {
		a = alloc.NewLogging(a, logger)
	}
	return a, nil
}

// Options returns the String options matching c.
func (c Config) Options(logger *slog.Logger) ([]growstr.Option, error) {
	a, err := c.NewAllocator(logger)
	if err != nil {
		return nil, err
	}
	return []growstr.Option{
		growstr.WithAllocator(a),
		growstr.WithPolicy(c.Policy()),
		growstr.WithEastAsianWidth(c.Width.EastAsian),
	}, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
