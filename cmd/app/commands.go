package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bankvault/cmd/app/commands"
	"github.com/allisson/bankvault/internal/app"
	"github.com/allisson/bankvault/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getBankingCommands()...)
	cmds = append(cmds, getAuthCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	return cmds
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withContainer builds a container from the environment, runs fn and releases every
// resource the container opened.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()
	return fn(container)
}
