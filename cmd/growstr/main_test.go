package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// noConfig points at a file that does not exist so the user's own config
// never leaks into a test.
func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.toml")
}

func TestRunStdin(t *testing.T) {
	code, out, errOut := runCmd(t, "hello", "-config", noConfig(t))
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	want := "-\tbytes=5 codepoints=5 graphemes=5 width=5 cap=16\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(good, []byte("caf\u00e9"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte{'o', 'k', 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCmd(t, "", "-config", noConfig(t), good, bad)
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(out, "bytes=5 codepoints=4 graphemes=4 width=4") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "malformed sequence at byte 2") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, errOut := runCmd(t, "", "-config", noConfig(t), filepath.Join(t.TempDir(), "gone.txt"))
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, "gone.txt") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCmd(t, "", "-version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "growstr ") || !strings.Contains(out, "built at") {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "growstr.toml")
	code, _, errOut := runCmd(t, "", "-config", path, "-init-config")
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	code, out, errOut := runCmd(t, "ab", "-config", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "cap=16") {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunConfigApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growstr.yaml")
	content := "growth:\n  min_capacity: 64\nallocator:\n  log_calls: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCmd(t, "x", "-config", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "cap=64") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "component=alloc") {
		t.Errorf("allocator calls not logged: %q", errOut)
	}
}

func TestRunBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-nope"}, 2},
		{"invalid config", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if args == nil {
				path := filepath.Join(t.TempDir(), "bad.toml")
				if err := os.WriteFile(path, []byte("[growth]\nfactor = 9\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				args = []string{"-config", path}
			}
			if code, _, _ := runCmd(t, "", args...); code != tt.code {
				t.Errorf("exit %d, want %d", code, tt.code)
			}
		})
	}
}
