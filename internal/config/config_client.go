package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds the settings the install and relocate flows need.
type ClientApp struct {
	// Secret is the vendor shared secret.
	Secret string
	// Root is the kenv root directory.
	Root string
	// DownloadDir is the directory archives are downloaded to.
	DownloadDir string
	// Debug enables debug logging.
	Debug bool
}

// KenvsDir returns the directory holding installed kenvs.
func (a ClientApp) KenvsDir() string {
	return filepath.Join(a.Root, "kenvs")
}

// ClientAdapter holds network settings used by the vendor client.
type ClientAdapter struct {
	// HTTPAddress is the vendor API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound vendor requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the configuration view consumed by the client runtime.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Secret:      cfg.App.Secret,
			Root:        cfg.App.Root,
			DownloadDir: cfg.App.DownloadDir,
			Debug:       cfg.App.Debug,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}
