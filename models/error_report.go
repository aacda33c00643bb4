// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorReport is a best-effort diagnostic sent to the vendor after a failed
// download or activation. Empty fields are not transmitted.
type ErrorReport struct {
	// ItemName is the catalog item the failure happened for.
	ItemName string

	// Code is a short machine-readable error code, e.g. "activation_limit".
	Code string

	// Body is the human-readable error message.
	Body string

	// LicenseKey is set for paid items.
	LicenseKey string

	// InstanceName is the hashed machine identity, set for paid items.
	InstanceName string

	// InstanceID is set when the failure happened with stored credentials.
	InstanceID string

	// Email is the contact address the user entered, used for free items.
	Email string
}
