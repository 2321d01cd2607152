package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/service"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"get"} }
func (c *ShowCmd) Synopsis() string  { return "Show one task" }
func (c *ShowCmd) Usage() string     { return "tasklist show <id>" }
func (c *ShowCmd) Access() Access    { return ReadStore }
func (c *ShowCmd) NeedsAuth() bool   { return false }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		return idError(errOut, err)
	}

	t, err := svc.Get(id)
	if err != nil {
		return exitFor(err)
	}
	output.FormatDetail(out, t)
	return exitcode.Success
}
