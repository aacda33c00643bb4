// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kenv command runtime.
//
// It wires configuration, the credential store, the vendor adapter and the
// terminal prompts into the services and runs one command per process:
// install, relocate, list, forget or version.
package client
