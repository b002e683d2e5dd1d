package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/avocadohq/admin-console/cmd/app/commands"
	"github.com/avocadohq/admin-console/internal/app"
	"github.com/avocadohq/admin-console/internal/config"
)

func getPlatformCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create a new platform administrator",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Auth provider user ID of the administrator",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Administrator email address",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "ADMIN",
					Usage:   "Administrator role: 'MASTER' or 'ADMIN'",
				},
				&cli.StringFlag{
					Name:    "temp-password",
					Aliases: []string{"p"},
					Usage:   "Temporary password (omit to generate a random one)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				adminUseCase, err := container.AdminUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAdmin(
					ctx,
					adminUseCase,
					container.Logger(),
					cmd.String("user-id"),
					cmd.String("email"),
					cmd.String("role"),
					cmd.String("temp-password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
