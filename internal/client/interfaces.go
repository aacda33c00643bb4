// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/kenv-keeper/internal/service"

// UI is what the client needs from the terminal front end: the prompts the
// services use plus a way to show a terminal error.
type UI interface {
	service.Prompter

	// ShowError prints err in a user-facing form.
	ShowError(err error)
}
