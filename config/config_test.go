package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveWatchedDirPriority(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{
			name: "cli argument wins",
			args: []string{"/tmp/from-arg"},
			env:  "/tmp/from-env",
			want: "/tmp/from-arg",
		},
		{
			name: "env used when no argument",
			args: nil,
			env:  "/tmp/from-env",
			want: "/tmp/from-env",
		},
		{
			name: "default when nothing set",
			args: nil,
			env:  "",
			want: defaultWatchedDir,
		},
		{
			name: "empty argument falls through",
			args: []string{""},
			env:  "/tmp/from-env",
			want: "/tmp/from-env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envWatchedDir, tt.env)
			if got := resolveWatchedDir(tt.args); got != tt.want {
				t.Errorf("resolveWatchedDir(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestInitializeCreatesWatchedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	t.Setenv(envWatchedDir, "")
	t.Setenv(envAddress, "")

	if err := Initialize([]string{dir}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { globalConfig = nil })

	cfg := Get()
	if cfg.WatchedDir != dir {
		t.Errorf("WatchedDir = %q, want %q", cfg.WatchedDir, dir)
	}
	if cfg.Address != defaultAddress {
		t.Errorf("Address = %q, want %q", cfg.Address, defaultAddress)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("watched dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("watched dir path is not a directory")
	}
}

func TestAddressOverride(t *testing.T) {
	t.Setenv(envAddress, ":9111")
	if got := resolveAddress(); got != ":9111" {
		t.Errorf("resolveAddress = %q, want :9111", got)
	}
}
