// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is used.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Root == "" || cfg.App.DownloadDir == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateForVendor additionally checks the settings needed to reach the
// vendor API. Commands that never talk to the vendor skip it.
func (cfg *ClientConfig) ValidateForVendor() error {
	if strings.TrimSpace(cfg.App.Secret) == "" {
		return ErrMissingSecret
	}

	return nil
}
