package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&PublishCmd{})
}

// PublishCmd implements the publish command.
type PublishCmd struct {
	listName string
	remote   service.Remote
}

// SetRemote sets the remote to publish to.
func (c *PublishCmd) SetRemote(r service.Remote) {
	c.remote = r
}

func (c *PublishCmd) Name() string      { return "publish" }
func (c *PublishCmd) Aliases() []string { return []string{"push"} }
func (c *PublishCmd) Synopsis() string  { return "Copy tasks to a Google Tasks list" }
func (c *PublishCmd) Usage() string     { return "tasklist publish [--list <list-name>]" }
func (c *PublishCmd) Access() Access    { return ReadStore }
func (c *PublishCmd) NeedsAuth() bool   { return true }

func (c *PublishCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PublishCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if c.remote == nil {
		fmt.Fprintln(errOut, "error: no remote configured")
		return exitcode.AuthError
	}

	name := strings.TrimSpace(c.listName)
	if name == "" {
		name = cfg.PublishList()
	}

	_, err := svc.Publish(ctx, c.remote, name)
	return exitFor(err)
}
