// Package config provides configuration loading, merging, and validation
// facilities for kenv-keeper.
//
// Configuration is assembled from multiple sources; for every field the first
// source holding a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (KENV_*)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
