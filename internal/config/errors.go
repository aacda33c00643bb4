package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid vendor client settings
	// (for example, a missing address or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid credential storage settings
	// (for example, an empty or in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty root directory).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrMissingSecret is returned by [ClientConfig.ValidateForVendor] when
	// no vendor secret was configured.
	ErrMissingSecret = errors.New("vendor secret is not configured (use --secret or KENV_APP_SECRET)")
)
