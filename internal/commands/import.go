package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/csvstore"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&ImportCmd{})
	Register(&ExportCmd{})
}

// ImportCmd implements the import command.
type ImportCmd struct {
	strict bool
}

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return []string{"load"} }
func (c *ImportCmd) Synopsis() string  { return "Append the tasks of a CSV file" }
func (c *ImportCmd) Usage() string     { return "tasklist import [--strict] <path>" }
func (c *ImportCmd) Access() Access    { return WriteStore }
func (c *ImportCmd) NeedsAuth() bool   { return false }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.strict, "strict", false, "")
}

// Run loads the file into the store. Without --strict, malformed lines are
// reported, the lines that parsed are kept and committed, and the exit code
// still signals the user error.
func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return usageError(errOut, "path required")
	}

	n, err := svc.Load(args[0], c.strict)
	if err == nil {
		return exitcode.Success
	}

	if !c.strict && n > 0 && errors.Is(err, csvstore.ErrMalformed) {
		if err := svc.Commit(); err != nil {
			return exitcode.BackendError
		}
		fmt.Fprintf(errOut, "warning: imported %d tasks, skipped malformed lines\n", n)
	}
	return exitFor(err)
}

// ExportCmd implements the export command.
type ExportCmd struct{}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return []string{"save"} }
func (c *ExportCmd) Synopsis() string  { return "Write all tasks to a CSV file" }
func (c *ExportCmd) Usage() string     { return "tasklist export <path>" }
func (c *ExportCmd) Access() Access    { return ReadStore }
func (c *ExportCmd) NeedsAuth() bool   { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return usageError(errOut, "path required")
	}
	return exitFor(svc.Save(args[0]))
}
