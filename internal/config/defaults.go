package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultVendorAddress is the vendor API used when nothing else is configured.
	DefaultVendorAddress = "https://kenv.uffelmann.me"
	// DefaultRequestTimeout bounds vendor calls when nothing else is configured.
	DefaultRequestTimeout = 30 * time.Second

	defaultRootDirName     = ".kenv"
	defaultDownloadDirName = "Downloads"
	defaultDBFileName      = "kenv-keeper.db"
)

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

func defaultConfig() (*StructuredConfig, error) {
	home, err := userHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving home directory: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Root:        filepath.Join(home, defaultRootDirName),
			DownloadDir: filepath.Join(home, defaultDownloadDirName),
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultVendorAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}, nil
}

// applyDerivedDefaults fills values that depend on other merged values and
// expands a leading "~" in paths.
func (cfg *StructuredConfig) applyDerivedDefaults() {
	cfg.App.Root = expandHome(cfg.App.Root)
	cfg.App.DownloadDir = expandHome(cfg.App.DownloadDir)
	cfg.Storage.DB.DSN = expandHome(cfg.Storage.DB.DSN)

	if cfg.Storage.DB.DSN == "" && cfg.App.Root != "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.App.Root, "db", defaultDBFileName)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := userHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
