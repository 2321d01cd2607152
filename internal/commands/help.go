package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	// Registry lists the commands to describe. Nil means DefaultRegistry.
	Registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklist help [command]" }
func (c *HelpCmd) Access() Access    { return NoStore }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	reg := c.Registry
	if reg == nil {
		reg = DefaultRegistry
	}

	if len(args) > 0 {
		cmd, ok := reg.Find(args[0])
		if !ok {
			return usageError(errOut, "unknown command: %s", args[0])
		}
		fmt.Fprintf(out, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(aliases, ", "))
		}
		return exitcode.Success
	}

	fmt.Fprintln(out, "Usage:")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  tasklist\tList all tasks\n")
	for _, cmd := range reg.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
	}
	tw.Flush()
	fmt.Fprint(out, commonFlagsText)
	return exitcode.Success
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --file <path>    Use this tasks file instead of the configured one
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Dates are YYYY-MM-DD, "today" or "tomorrow". Priorities are RED, YELLOW, GREEN.
`
