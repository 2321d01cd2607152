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

// Version is the application version, overridden at build time with
// -ldflags "-X tasklist/internal/commands.Version=...".
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "tasklist version" }
func (c *VersionCmd) Access() Access    { return NoStore }
func (c *VersionCmd) NeedsAuth() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	fmt.Fprintf(out, "tasklist %s\n", Version)
	return exitcode.Success
}
