package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasklist` (no args) and filtered views.
type ListCmd struct {
	open     bool
	done     bool
	priority string
	from     string
	sortBy   string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasklist list [--open|--done] [--priority <p>] [--from <date>] [--sort id|priority]"
}
func (c *ListCmd) Access() Access  { return ReadStore }
func (c *ListCmd) NeedsAuth() bool { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.open, "open", false, "")
	fs.BoolVar(&c.done, "done", false, "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.from, "from", "", "")
	fs.StringVar(&c.sortBy, "sort", "id", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if c.open && c.done {
		return usageError(errOut, "--open and --done are mutually exclusive")
	}

	var f task.Filter
	if c.open || c.done {
		completed := c.done
		f.Completed = &completed
	}
	if c.priority != "" {
		p, err := task.ParsePriority(c.priority)
		if err != nil {
			return usageError(errOut, "%v", err)
		}
		f.Priority = &p
	}
	if c.from != "" {
		from, err := ParseDate(c.from, Today())
		if err != nil {
			return usageError(errOut, "%v", err)
		}
		f.From = &from
	}

	tasks := svc.Query(f)

	switch strings.ToLower(c.sortBy) {
	case "id", "":
	case "priority":
		tasks = task.SortByPriority(tasks)
	default:
		return usageError(errOut, "invalid sort key: %s (want id or priority)", c.sortBy)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
