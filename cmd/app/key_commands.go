package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bankvault/cmd/app/commands"
	"github.com/allisson/bankvault/internal/app"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-kms-key",
			Usage: "Generate a local KMS key URI, or verify an existing one",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "KMS key URI to verify (gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					return commands.RunCreateKMSKey(
						ctx,
						container.KMSService(),
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("kms-key-uri"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
