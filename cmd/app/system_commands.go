package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bankvault/cmd/app/commands"
	"github.com/allisson/bankvault/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations for the postgres and mysql storage drivers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					cfg := container.Config()
					if !cfg.UsesDatabase() {
						return errors.New("migrate requires STORAGE_DRIVER=postgres or STORAGE_DRIVER=mysql")
					}
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				})
			},
		},
		{
			Name:  "status",
			Usage: "Show the key store in use and which records are cached",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					lifecycleUseCase, err := container.LifecycleUseCase()
					if err != nil {
						return err
					}
					pinUseCase, err := container.PinUseCase()
					if err != nil {
						return err
					}
					return commands.RunStatus(ctx, lifecycleUseCase, pinUseCase, commands.DefaultIO().Writer, cmd.String("format"))
				})
			},
		},
		{
			Name:  "bootstrap",
			Usage: "Store the seed profile and transactions where nothing valid is cached",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					lifecycleUseCase, err := container.LifecycleUseCase()
					if err != nil {
						return err
					}
					seedData, err := container.SeedData()
					if err != nil {
						return err
					}
					return commands.RunBootstrap(
						ctx,
						lifecycleUseCase,
						seedData,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "security-reset",
			Usage: "Delete the cached banking data and the device keys",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Skip the confirmation prompt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					lifecycleUseCase, err := container.LifecycleUseCase()
					if err != nil {
						return err
					}
					return commands.RunSecurityReset(
						ctx,
						lifecycleUseCase,
						container.Logger(),
						commands.DefaultIO(),
						cmd.Bool("yes"),
					)
				})
			},
		},
	}
}
