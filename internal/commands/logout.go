package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove stored Google credentials" }
func (c *LogoutCmd) Usage() string     { return "tasklist logout [common flags]" }
func (c *LogoutCmd) Access() Access    { return NoStore }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run deletes token.json only; oauth_client.json, config.yaml and the tasks
// file stay, so a later login can publish the same tasks again.
func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %s\n", cfg.TokenPath())
	}
	return exitcode.Success
}
