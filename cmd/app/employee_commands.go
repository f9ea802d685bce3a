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

func getEmployeeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seed-employees",
			Usage: "Insert sample employees for local development",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				employeeUC, err := container.EmployeeUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize employee use case: %w", err)
				}

				return commands.RunSeedEmployees(
					ctx,
					employeeUC,
					container.Logger(),
					os.Stdout,
				)
			},
		},
	}
}
