package config

import (
	"os"
	"path/filepath"

	"github.com/rohanthewiz/serr"
)

const (
	// Default directory to watch when neither the CLI nor env names one
	defaultWatchedDir = "./pdfs"

	defaultAddress = ":8000"

	envWatchedDir = "PDFCAST_DIR"
	envAddress    = "PDFCAST_ADDR"
)

// Config holds application configuration
type Config struct {
	WatchedDir string // absolute path of the watched directory
	Address    string // server listen address
}

// globalConfig holds the application configuration instance
var globalConfig *Config

// Initialize resolves configuration and creates the watched directory.
// args are the program arguments after the binary name.
func Initialize(args []string) error {
	dir, err := filepath.Abs(resolveWatchedDir(args))
	if err != nil {
		return serr.Wrap(err, "failed to resolve watched directory")
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return serr.Wrap(err, "failed to create watched directory", "dir", dir)
	}

	globalConfig = &Config{
		WatchedDir: dir,
		Address:    resolveAddress(),
	}
	return nil
}

// Get returns the global configuration instance
func Get() *Config {
	if globalConfig == nil {
		if err := Initialize(nil); err != nil {
			// Fall back to an unresolved default rather than panic;
			// the scan path already tolerates a missing directory
			globalConfig = &Config{WatchedDir: defaultWatchedDir, Address: defaultAddress}
		}
	}
	return globalConfig
}

// resolveWatchedDir applies the priority order: CLI argument, then
// environment variable, then the fixed default.
func resolveWatchedDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if dir := os.Getenv(envWatchedDir); dir != "" {
		return dir
	}
	return defaultWatchedDir
}

func resolveAddress() string {
	if addr := os.Getenv(envAddress); addr != "" {
		return addr
	}
	return defaultAddress
}
