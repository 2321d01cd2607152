// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

// Access describes how a command uses the task store.
type Access int

const (
	// NoStore commands never touch the tasks file.
	NoStore Access = iota

	// ReadStore commands load the tasks file and never write it.
	ReadStore

	// WriteStore commands load the tasks file and commit it on success.
	WriteStore
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Access reports whether the dispatcher must load (and commit) the store.
	Access() Access

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// svc is nil if Access() returns NoStore.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// RemoteCommand is implemented by commands that need a Remote.
// The dispatcher calls SetRemote before Run when NeedsAuth is true.
type RemoteCommand interface {
	Command
	SetRemote(r service.Remote)
}
