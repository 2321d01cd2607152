package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with Google" }
func (c *LoginCmd) Usage() string     { return "tasklist login [common flags]" }
func (c *LoginCmd) Access() Access    { return NoStore }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n\n", cfg.Dir)
		fmt.Fprint(errOut, oauthSetupText)
		fmt.Fprintf(errOut, "   %s/oauth_client.json\n\n", cfg.Dir)
		fmt.Fprintln(errOut, "Then run 'tasklist login' again.")
		return exitcode.AuthError
	}

	if cfg.HasToken() && googletasks.TokenValid(ctx, cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	oc, err := googletasks.LoadOAuthConfig(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	token, err := googletasks.Authorize(ctx, oc, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := googletasks.SaveToken(cfg.TokenPath(), token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

const oauthSetupText = `Publishing to Google Tasks needs OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Create a project (or select an existing one)
3. Enable the Google Tasks API:
   https://console.cloud.google.com/apis/library/tasks.googleapis.com
4. Create OAuth 2.0 credentials:
   - Click 'Create Credentials' > 'OAuth client ID'
   - Choose 'Desktop app' as application type
   - Download the JSON file
5. Save it as:
`
