package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Fields without a flag keep their value.
type EditCmd struct {
	desc     optString
	due      optString
	priority optString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's description, due date or priority" }
func (c *EditCmd) Usage() string {
	return "tasklist edit <id> [--desc <text>] [--due <date>] [--priority <p>]"
}
func (c *EditCmd) Access() Access  { return WriteStore }
func (c *EditCmd) NeedsAuth() bool { return false }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.desc, c.due, c.priority = optString{}, optString{}, optString{}
	fs.Var(&c.desc, "desc", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.due, "d", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		return idError(errOut, err)
	}
	if len(args) > 1 {
		return usageError(errOut, "unexpected argument: %s", args[1])
	}
	if !c.desc.set && !c.due.set && !c.priority.set {
		return usageError(errOut, "nothing to change (use --desc, --due or --priority)")
	}

	cur, err := svc.Get(id)
	if err != nil {
		return exitFor(err)
	}

	desc, due, priority := cur.Description, cur.Due, cur.Priority
	if c.desc.set {
		if desc, err = parseDescription([]string{c.desc.value}); err != nil {
			return usageError(errOut, "%v", err)
		}
	}
	if c.due.set {
		if due, err = ParseDate(c.due.value, Today()); err != nil {
			return usageError(errOut, "%v", err)
		}
	}
	if c.priority.set {
		if priority, err = task.ParsePriority(c.priority.value); err != nil {
			return usageError(errOut, "%v", err)
		}
	}

	return exitFor(svc.Edit(id, desc, due, priority))
}
