// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values received from the vendor or read from the
// credential store before the services act on them.
//
// A Validator validates a value as a whole or only the named fields. Item
// names become directory names, so they are validated before any path is
// built from them.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
