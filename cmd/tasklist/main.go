// Package main is the entry point for the tasklist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/cli"
	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	remote := func(ctx context.Context, cfg *config.Config) (service.Remote, error) {
		c, err := googletasks.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.OpenLocal, remote)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
