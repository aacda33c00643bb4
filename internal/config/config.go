// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for kenv-keeper.
// It is populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the vendor secret and the local filesystem layout.
	App App `envPrefix:"KENV_APP_"`

	// Storage holds the local credential database settings.
	Storage Storage `envPrefix:"KENV_STORAGE_"`

	// Adapter holds the vendor API address and request timeout.
	Adapter Adapter `envPrefix:"KENV_ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the KENV_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"KENV_CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Secret is the shared secret authenticating this client to the vendor
	// API. It is not a user secret.
	// Env: KENV_APP_SECRET
	Secret string `env:"SECRET"`

	// Root is the kenv root directory; installs live under Root/kenvs.
	// Env: KENV_APP_ROOT
	Root string `env:"ROOT"`

	// DownloadDir is where archives are downloaded before extraction and
	// where the relocator starts looking for folders.
	// Env: KENV_APP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// Debug enables debug-level console logging.
	// Env: KENV_APP_DEBUG
	Debug bool `env:"DEBUG"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the credential database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite credential database.
type DB struct {
	// DSN is the SQLite file path. Defaults to Root/db/kenv-keeper.db.
	// Env: KENV_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the outbound vendor API client.
type Adapter struct {
	// HTTPAddress is the vendor API base URL.
	// Env: KENV_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every vendor API call, including archive
	// downloads (e.g. "30s", "2m").
	// Env: KENV_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources. The first source holding a non-zero value for a field
// wins, in this order:
//  1. Command-line flags registered with [RegisterFlags] on fs
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
