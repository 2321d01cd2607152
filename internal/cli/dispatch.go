// Package cli parses the command line and runs commands against the task store.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/csvstore"
	"tasklist/internal/exitcode"
	"tasklist/internal/logging"
	"tasklist/internal/service"
)

// ServiceFactory opens the task store for a command.
// When the backing file is only partly readable it returns the service
// together with the load error.
type ServiceFactory func(ctx context.Context, cfg *config.Config, rep service.Reporter, log *zerolog.Logger) (service.Service, error)

// RemoteFactory creates the remote used by commands that need auth.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (service.Remote, error)

// OpenLocal is the default ServiceFactory: a service backed by cfg.TasksPath().
func OpenLocal(ctx context.Context, cfg *config.Config, rep service.Reporter, log *zerolog.Logger) (service.Service, error) {
	return service.Open(cfg.TasksPath(), rep, log)
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	remote   RemoteFactory
}

// NewDispatcher creates a new dispatcher. A nil factory means OpenLocal; a nil
// remote factory makes commands that need auth fail.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, remote RemoteFactory) *Dispatcher {
	if factory == nil {
		factory = OpenLocal
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		remote:   remote,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var file string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&file, "file", "", "")
	fs.StringVar(&file, "f", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&quiet, "q", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	positionalArgs, err := parseInterspersed(fs, args)
	if err != nil {
		return flagError(errOut, err)
	}

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.File = file
	cfg.Quiet = quiet
	cfg.Debug = debug

	log := logging.New(errOut, cfg.Settings.LogLevel, debug)
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Dir).
		Str("file", cfg.TasksPath()).
		Msg("dispatch")

	rep := service.MultiReporter{
		service.NewConsoleReporter(out, errOut, quiet),
		service.NewLogReporter(&log),
	}

	// Open the store
	var svc service.Service
	if cmd.Access() != commands.NoStore {
		svc, err = d.factory(ctx, cfg, rep, &log)
		if code, ok := d.checkLoad(cmd, cfg, svc, err, errOut); !ok {
			return code
		}
	}

	// Check auth requirements
	if cmd.NeedsAuth() {
		if code, ok := d.attachRemote(ctx, cmd, cfg, errOut); !ok {
			return code
		}
	}

	// Run command
	code := cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
	if code != exitcode.Success || cmd.Access() != commands.WriteStore {
		return code
	}

	// Commit mutations
	if err := cfg.EnsureTasksDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	if err := svc.Commit(); err != nil {
		if errors.Is(err, service.ErrNoBackingFile) {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.BackendError
	}
	log.Debug().Int("tasks", svc.Len()).Msg("committed")
	return exitcode.Success
}

// checkLoad decides whether a command may run after opening the store.
// Malformed lines only warn for read-only commands; writing would drop them.
func (d *Dispatcher) checkLoad(cmd commands.Command, cfg *config.Config, svc service.Service, err error, errOut io.Writer) (int, bool) {
	if err == nil {
		return exitcode.Success, true
	}
	if svc == nil || !errors.Is(err, csvstore.ErrMalformed) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError, false
	}
	if cmd.Access() == commands.WriteStore {
		fmt.Fprintf(errOut, "error: %v\n", err)
		fmt.Fprintf(errOut, "error: refusing to modify %s until the malformed lines are fixed\n", cfg.TasksPath())
		return exitcode.BackendError, false
	}
	fmt.Fprintf(errOut, "warning: %v\n", err)
	return exitcode.Success, true
}

// attachRemote hands a remote to commands that need one.
func (d *Dispatcher) attachRemote(ctx context.Context, cmd commands.Command, cfg *config.Config, errOut io.Writer) (int, bool) {
	rc, ok := cmd.(commands.RemoteCommand)
	if !ok {
		return exitcode.Success, true
	}
	if d.remote == nil {
		fmt.Fprintln(errOut, "error: auth error: no remote configured")
		return exitcode.AuthError, false
	}
	remote, err := d.remote(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %s\n", err)
		return exitcode.AuthError, false
	}
	rc.SetRemote(remote)
	return exitcode.Success, true
}

// parseInterspersed parses flags appearing anywhere among the positional
// arguments, so that `edit 3 --due tomorrow` works. Everything after "--" is
// positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagError reports a flag parsing error.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
