package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bulga138/growstr"
	"github.com/bulga138/growstr/alloc"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Growth.Factor != 2 || cfg.Growth.MinCapacity != 16 {
		t.Errorf("growth = %+v, want factor 2 and min capacity 16", cfg.Growth)
	}
	if cfg.Allocator.Kind != KindHeap {
		t.Errorf("allocator kind = %q, want %q", cfg.Allocator.Kind, KindHeap)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[growth]
factor = 1.5

[allocator]
max_bytes = 4096
log_calls = true

[width]
east_asian = true

[log]
level = "debug"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Growth.Factor != 1.5 {
		t.Errorf("factor = %v, want 1.5", cfg.Growth.Factor)
	}
	if cfg.Growth.MinCapacity != 16 {
		t.Errorf("min capacity = %d, want default 16", cfg.Growth.MinCapacity)
	}
	if cfg.Allocator.Kind != KindHeap || cfg.Allocator.MaxBytes != 4096 || !cfg.Allocator.LogCalls {
		t.Errorf("allocator = %+v", cfg.Allocator)
	}
	if !cfg.Width.EastAsian {
		t.Error("east_asian not applied")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
growth:
  min_capacity: 64
allocator:
  kind: heap
log:
  level: warn
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Growth.MinCapacity != 64 || cfg.Growth.Factor != 2 {
		t.Errorf("growth = %+v", cfg.Growth)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown toml key", "c.toml", "[growth]\nspeed = 3\n", "unknown key"},
		{"unknown yaml key", "c.yml", "growth:\n  speed: 3\n", "speed"},
		{"bad toml", "c.toml", "[growth\n", "parse"},
		{"factor too small", "c.toml", "[growth]\nfactor = 1.2\n", "growth"},
		{"factor too large", "c.yaml", "growth:\n  factor: 3\n", "growth"},
		{"bad kind", "c.toml", "[allocator]\nkind = \"arena\"\n", "unknown kind"},
		{"negative max", "c.toml", "[allocator]\nmax_bytes = -1\n", "max_bytes"},
		{"bad level", "c.toml", "[log]\nlevel = \"loud\"\n", "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Growth.Factor = 1.75
	want.Allocator.MaxBytes = 1 << 20
	want.Width.EastAsian = true
	want.Log.Level = "error"

	for _, name := range []string{"nested/config.toml", "nested/config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveConfig(path, want); err != nil {
				t.Fatalf("SaveConfig: %v", err)
			}
			got, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if got != want {
				t.Errorf("round trip: got %+v, want %+v", got, want)
			}
		})
	}
}

func TestNewAllocator(t *testing.T) {
	cfg := DefaultConfig()
	a, err := cfg.NewAllocator(nil)
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	if _, ok := a.(alloc.Heap); !ok {
		t.Errorf("default allocator is %T, want alloc.Heap", a)
	}

	cfg.Allocator.MaxBytes = 32
	a, err = cfg.NewAllocator(nil)
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	if _, ok := a.(*alloc.Limit); !ok {
		t.Fatalf("limited allocator is %T, want *alloc.Limit", a)
	}
	if _, err := a.Acquire(64); !errors.Is(err, alloc.ErrAllocationFailure) {
		t.Errorf("Acquire over limit: err = %v", err)
	}

	cfg.Allocator.LogCalls = true
	a, err = cfg.NewAllocator(nil)
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	if _, ok := a.(*alloc.Logging); !ok {
		t.Errorf("logging allocator is %T, want *alloc.Logging", a)
	}
}

func TestEmptyAllocatorKindRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Allocator.Kind = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an empty allocator kind")
	}
	if _, err := cfg.NewAllocator(nil); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("NewAllocator with empty kind: err = %v", err)
	}
	if _, err := cfg.Options(nil); err == nil {
		t.Error("Options accepted an empty allocator kind")
	}
}

func TestNewAllocatorMmap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Allocator.Kind = KindMmap
	a, err := cfg.NewAllocator(nil)
	if runtime.GOOS != "linux" {
		if !errors.Is(err, alloc.ErrUnsupported) {
			t.Errorf("err = %v, want ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("NewAllocator: %v", err)
	}
	block, err := a.Acquire(100)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := a.Release(block); err != nil {
		t.Errorf("Release: %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Growth.MinCapacity = 40
	cfg.Width.EastAsian = true

	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	s := growstr.New(opts...)
	if err := s.AppendString("\u00b1"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if s.Cap() != 40 {
		t.Errorf("Cap() = %d, want 40", s.Cap())
	}
	if w := s.Width(); w != 2 {
		t.Errorf("Width() = %d, want 2 with east asian widths", w)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	logger := cfg.Logger(&buf)

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info record logged at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestLoggerWiresAllocatorCalls(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Allocator.LogCalls = true
	cfg.Log.Level = "debug"

	opts, err := cfg.Options(cfg.Logger(&buf))
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	s := growstr.New(opts...)
	if err := s.AppendString("hello"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if !strings.Contains(buf.String(), "component=alloc") {
		t.Errorf("allocator calls not logged: %q", buf.String())
	}
}
