package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

func init() {
	Register(&DueCmd{})
}

// DueCmd implements the due command.
type DueCmd struct{}

func (c *DueCmd) Name() string      { return "due" }
func (c *DueCmd) Aliases() []string { return []string{"move"} }
func (c *DueCmd) Synopsis() string  { return "Change a task's due date" }
func (c *DueCmd) Usage() string     { return "tasklist due <id> <date>" }
func (c *DueCmd) Access() Access    { return WriteStore }
func (c *DueCmd) NeedsAuth() bool   { return false }

func (c *DueCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DueCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		return idError(errOut, err)
	}
	if len(args) < 2 {
		return usageError(errOut, "date required")
	}
	due, err := ParseDate(args[1], Today())
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	return exitFor(svc.ChangeDate(id, due))
}
