// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (missing or bad args, unknown command).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// BackendError indicates an API or network error.
	BackendError = 3

	// WriteError indicates the export file could not be written.
	WriteError = 4
)
