// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists kenv license credentials on the local machine.
//
// [CredentialStore] is the only abstraction; it has a SQLite implementation
// ([NewCredentialRepository]) used by the CLI and an in-memory one
// ([NewMemoryCredentialStore]) for tests and dry runs.
package store

import (
	"context"

	"github.com/MKhiriev/kenv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore is a key-value store of [models.Credentials] keyed by
// catalog item name.
type CredentialStore interface {
	// Get returns the credentials stored for itemName, or
	// [ErrCredentialsNotFound] if there are none.
	Get(ctx context.Context, itemName string) (models.Credentials, error)

	// Set stores creds under creds.ItemName, replacing previous credentials.
	// The original creation time of a replaced record is kept.
	Set(ctx context.Context, creds models.Credentials) error

	// Delete removes the credentials stored for itemName. Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, itemName string) error

	// List returns all stored credentials ordered by item name.
	List(ctx context.Context) ([]models.Credentials, error)
}
