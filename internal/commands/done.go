package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&ToggleCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "tasklist done <id>" }
func (c *DoneCmd) Access() Access    { return WriteStore }
func (c *DoneCmd) NeedsAuth() bool   { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		return idError(errOut, err)
	}
	return exitFor(svc.Complete(id))
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return nil }
func (c *ToggleCmd) Synopsis() string  { return "Flip a task between open and completed" }
func (c *ToggleCmd) Usage() string     { return "tasklist toggle <id>" }
func (c *ToggleCmd) Access() Access    { return WriteStore }
func (c *ToggleCmd) NeedsAuth() bool   { return false }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		return idError(errOut, err)
	}
	_, err = svc.Toggle(id)
	return exitFor(err)
}
