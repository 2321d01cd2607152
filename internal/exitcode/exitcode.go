// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task id, malformed input file).
	UserError = 1

	// AuthError indicates a Google auth/config error.
	AuthError = 2

	// BackendError indicates a storage or Google API failure.
	BackendError = 3
)
