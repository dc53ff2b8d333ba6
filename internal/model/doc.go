// Package model defines the domain types and value objects for the
// lasagna-timer CLI.
//
// This package contains pure data structures with no external dependencies.
// A Report is a transient snapshot computed from the arithmetic in the
// lasagna package; nothing is ever persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
