// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials bind a license key to the server-issued activation instance of
// one catalog item on this machine.
//
// A record for an item exists only after a successful activation and is
// removed as soon as a paid download using it fails.
type Credentials struct {
	// ItemName is the catalog item the credentials belong to.
	ItemName string `json:"item_name"`

	// LicenseKey is the key entered by the user.
	LicenseKey string `json:"license_key"`

	// InstanceID is the activation instance id returned by the vendor.
	InstanceID string `json:"instance_id"`

	// CreatedAt is set by the store on first save.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// IsComplete reports whether the item name and both halves of the credential pair are present.
func (c Credentials) IsComplete() bool {
	return c.ItemName != "" && c.LicenseKey != "" && c.InstanceID != ""
}
