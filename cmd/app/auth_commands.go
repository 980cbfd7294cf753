package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bankvault/cmd/app/commands"
	"github.com/allisson/bankvault/internal/app"
)

func getAuthCommands() []*cli.Command {
	pinFlag := &cli.StringFlag{
		Name:  "pin",
		Usage: "PIN of 4 to 6 digits (prompted for when omitted)",
	}

	return []*cli.Command{
		{
			Name:  "pin",
			Usage: "Manage the device PIN",
			Commands: []*cli.Command{
				{
					Name:  "set",
					Usage: "Set the device PIN",
					Flags: []cli.Flag{pinFlag},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							pinUseCase, err := container.PinUseCase()
							if err != nil {
								return err
							}
							return commands.RunPinSet(ctx, pinUseCase, commands.DefaultIO(), cmd.String("pin"))
						})
					},
				},
				{
					Name:  "verify",
					Usage: "Verify a PIN against the stored one",
					Flags: []cli.Flag{pinFlag},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							pinUseCase, err := container.PinUseCase()
							if err != nil {
								return err
							}
							return commands.RunPinVerify(ctx, pinUseCase, commands.DefaultIO(), cmd.String("pin"))
						})
					},
				},
				{
					Name:  "clear",
					Usage: "Remove the device PIN",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							pinUseCase, err := container.PinUseCase()
							if err != nil {
								return err
							}
							return commands.RunPinClear(ctx, pinUseCase, commands.DefaultIO())
						})
					},
				},
			},
		},
	}
}
