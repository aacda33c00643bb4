package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every kenv command.
const (
	FlagSecret         = "secret"
	FlagRoot           = "root"
	FlagDownloadDir    = "download-dir"
	FlagDebug          = "debug"
	FlagAPI            = "api"
	FlagRequestTimeout = "request-timeout"
	FlagDB             = "db"
	FlagConfig         = "config"
)

// RegisterFlags adds the configuration flags to fs.
//
// Flags:
//
//	--secret           vendor shared secret
//	--root             kenv root directory (default ~/.kenv)
//	--download-dir     download directory (default ~/Downloads)
//	--debug            debug logging
//	--api              vendor API base URL
//	--request-timeout  vendor request timeout (e.g. "30s", "2m")
//	--db               credential database file
//	-c/--config        json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagSecret, "", "Vendor shared secret")
	fs.String(FlagRoot, "", "Kenv root directory (default ~/.kenv)")
	fs.String(FlagDownloadDir, "", "Download directory (default ~/Downloads)")
	fs.Bool(FlagDebug, false, "Print debug information")
	fs.String(FlagAPI, "", "Vendor API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Vendor request timeout (e.g. 30s, 2m)")
	fs.String(FlagDB, "", "Credential database file")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// ParseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Flags that were not registered read as zero values.
func ParseFlags(fs *pflag.FlagSet) *StructuredConfig {
	secret, _ := fs.GetString(FlagSecret)
	root, _ := fs.GetString(FlagRoot)
	downloadDir, _ := fs.GetString(FlagDownloadDir)
	debug, _ := fs.GetBool(FlagDebug)
	api, _ := fs.GetString(FlagAPI)
	requestTimeout, _ := fs.GetDuration(FlagRequestTimeout)
	dsn, _ := fs.GetString(FlagDB)
	jsonConfigPath, _ := fs.GetString(FlagConfig)

	return &StructuredConfig{
		App: App{
			Secret:      secret,
			Root:        root,
			DownloadDir: downloadDir,
			Debug:       debug,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    api,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
