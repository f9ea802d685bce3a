package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/employee-api/cmd/app/commands"
	"github.com/allisson/employee-api/internal/app"
	"github.com/allisson/employee-api/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create a bootstrap user with the admin role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address for the admin user",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password for the admin user",
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

				authUC, err := container.AuthUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize auth use case: %w", err)
				}

				return commands.RunCreateAdmin(
					ctx,
					authUC,
					container.Logger(),
					os.Stdout,
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "clean-expired-tokens",
			Usage: "Delete revoked tokens whose expiry has passed",
			Flags: []cli.Flag{
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

				authUC, err := container.AuthUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize auth use case: %w", err)
				}

				return commands.RunCleanExpiredTokens(
					ctx,
					authUC,
					container.Logger(),
					os.Stdout,
					cmd.String("format"),
				)
			},
		},
	}
}
