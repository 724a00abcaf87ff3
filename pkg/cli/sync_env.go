package cli

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func syncEnvCommand() *cli.Command {
	var (
		clients clientConfig
		dir     string
		appID   string
	)

	return &cli.Command{
		Name:  "sync-env",
		Usage: "Push production-safe variables of .env files to an Amplify app",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to the project directory",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "app-id",
				Aliases:     []string{"a"},
				Usage:       "Amplify app ID",
				Required:    true,
				Destination: &appID,
			},
		}, clients.flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			infraClients, err := clients.newClients(ctx)
			if err != nil {
				return err
			}

			out, err := usecase.New(infraClients).SyncEnvVars(ctx, &model.SyncEnvVarsInput{
				ProjectPath: dir,
				AppID:       types.AppID(appID),
			})
			if err != nil {
				return err
			}

			printJSON(c.Root().Writer, out)
			return nil
		},
	}
}
