// Package version exposes build metadata injected at compile time via
// ldflags and attaches the `version` subcommand to the CLI.
package version
