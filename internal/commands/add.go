package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due      string
	priority string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "tasklist add [--due <date>] [--priority <p>] <description...>"
}
func (c *AddCmd) Access() Access  { return WriteStore }
func (c *AddCmd) NeedsAuth() bool { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	desc, err := parseDescription(args)
	if err != nil {
		return usageError(errOut, "%v", err)
	}

	due := Today()
	if c.due != "" {
		if due, err = ParseDate(c.due, Today()); err != nil {
			return usageError(errOut, "%v", err)
		}
	}

	priority, err := cfg.DefaultPriority()
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	if c.priority != "" {
		if priority, err = task.ParsePriority(c.priority); err != nil {
			return usageError(errOut, "%v", err)
		}
	}

	svc.Add(desc, due, priority)
	return exitcode.Success
}
