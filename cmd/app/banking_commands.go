package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bankvault/cmd/app/commands"
	"github.com/allisson/bankvault/internal/app"
	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/httputil"
)

func getBankingCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "profile",
			Usage: "Show or update the cached banking profile",
			Commands: []*cli.Command{
				{
					Name:  "show",
					Usage: "Show the cached profile, or the seed profile when none is cached",
					Flags: []cli.Flag{
						&cli.BoolFlag{
							Name:  "reveal",
							Usage: "Print the full account number instead of the masked one",
						},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							profileUseCase, err := container.ProfileUseCase()
							if err != nil {
								return err
							}
							seedData, err := container.SeedData()
							if err != nil {
								return err
							}
							return commands.RunProfileShow(
								ctx,
								profileUseCase,
								seedData,
								commands.DefaultIO().Writer,
								cmd.Bool("reveal"),
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:  "update",
					Usage: "Merge the given fields onto the cached profile",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "user-name", Usage: "Account holder name"},
						&cli.FloatFlag{Name: "balance", Usage: "Account balance"},
						&cli.StringFlag{Name: "account-number", Usage: "Account number (separators such as - are kept)"},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						var partial bankingDomain.Profile
						if cmd.IsSet("user-name") {
							v := cmd.String("user-name")
							partial.UserName = &v
						}
						if cmd.IsSet("balance") {
							v := cmd.Float("balance")
							partial.AccountBalance = &v
						}
						if cmd.IsSet("account-number") {
							v := cmd.String("account-number")
							partial.AccountNumber = &v
						}
						return withContainer(ctx, func(container *app.Container) error {
							profileUseCase, err := container.ProfileUseCase()
							if err != nil {
								return err
							}
							return commands.RunProfileUpdate(
								ctx,
								profileUseCase,
								partial,
								commands.DefaultIO().Writer,
								cmd.String("format"),
							)
						})
					},
				},
			},
		},
		{
			Name:    "transactions",
			Aliases: []string{"tx"},
			Usage:   "Manage the cached transaction list",
			Commands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List cached transactions, or the seed transactions when none are cached",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "offset", Value: 0, Usage: "Number of transactions to skip"},
						&cli.IntFlag{Name: "limit", Value: httputil.DefaultLimit, Usage: "Maximum number of transactions"},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							transactionUseCase, err := container.TransactionUseCase()
							if err != nil {
								return err
							}
							seedData, err := container.SeedData()
							if err != nil {
								return err
							}
							return commands.RunTransactionsList(
								ctx,
								transactionUseCase,
								seedData,
								commands.DefaultIO().Writer,
								int(cmd.Int("offset")),
								int(cmd.Int("limit")),
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:  "add",
					Usage: "Append a transaction to the cached list",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "id", Usage: "Transaction id (generated when omitted)"},
						&cli.StringFlag{Name: "title", Required: true, Usage: "Title"},
						&cli.StringFlag{Name: "subtitle", Usage: "Subtitle"},
						&cli.FloatFlag{Name: "amount", Required: true, Usage: "Signed amount"},
						&cli.StringFlag{Name: "date", Usage: "Display date, e.g. Today or Dec 15"},
						&cli.StringFlag{Name: "type", Required: true, Usage: "debit or credit"},
						&cli.StringFlag{Name: "category", Usage: "Category"},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						amount := cmd.Float("amount")
						req := &dto.TransactionRequest{
							ID:       cmd.String("id"),
							Title:    cmd.String("title"),
							Subtitle: cmd.String("subtitle"),
							Amount:   &amount,
							Date:     cmd.String("date"),
							Type:     cmd.String("type"),
							Category: cmd.String("category"),
						}
						return withContainer(ctx, func(container *app.Container) error {
							transactionUseCase, err := container.TransactionUseCase()
							if err != nil {
								return err
							}
							return commands.RunTransactionAdd(
								ctx,
								transactionUseCase,
								req,
								commands.DefaultIO().Writer,
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:  "update",
					Usage: "Update fields of the first transaction with the given id",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "id", Required: true, Usage: "Transaction id"},
						&cli.StringFlag{Name: "title", Usage: "Title"},
						&cli.StringFlag{Name: "subtitle", Usage: "Subtitle"},
						&cli.FloatFlag{Name: "amount", Usage: "Signed amount"},
						&cli.StringFlag{Name: "date", Usage: "Display date"},
						&cli.StringFlag{Name: "type", Usage: "debit or credit"},
						&cli.StringFlag{Name: "category", Usage: "Category"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						req := &dto.TransactionUpdateRequest{
							Title:    optionalString(cmd, "title"),
							Subtitle: optionalString(cmd, "subtitle"),
							Date:     optionalString(cmd, "date"),
							Type:     optionalString(cmd, "type"),
							Category: optionalString(cmd, "category"),
						}
						if cmd.IsSet("amount") {
							v := cmd.Float("amount")
							req.Amount = &v
						}
						return withContainer(ctx, func(container *app.Container) error {
							transactionUseCase, err := container.TransactionUseCase()
							if err != nil {
								return err
							}
							return commands.RunTransactionUpdate(
								ctx,
								transactionUseCase,
								cmd.String("id"),
								req,
								commands.DefaultIO().Writer,
							)
						})
					},
				},
				{
					Name:  "delete",
					Usage: "Delete the first transaction with the given id",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "id", Required: true, Usage: "Transaction id"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, func(container *app.Container) error {
							transactionUseCase, err := container.TransactionUseCase()
							if err != nil {
								return err
							}
							return commands.RunTransactionDelete(
								ctx,
								transactionUseCase,
								cmd.String("id"),
								commands.DefaultIO().Writer,
							)
						})
					},
				},
			},
		},
	}
}

func optionalString(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}
