// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the Express CRUD scaffolder.
// It implements a Cobra-based root command that takes a singular and plural model
// name, resolves configuration from flags, an optional JSON or YAML file validated
// against an embedded JSON Schema, and defaults, and then drives the generator.
// Errors are returned to the caller instead of exiting, so the binary decides on
// the exit code and tests can inspect them.
package cli
